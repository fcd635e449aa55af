// Copyright © 2019 mg
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package cartridge

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/sixfiveohtwo/nesgo/internal/ines"
	"github.com/sixfiveohtwo/nesgo/internal/mapper"
)

// Load reads an iNES ROM image from r: the 16-byte header, an optional
// 512-byte trainer (discarded, not mapped anywhere), the PRG ROM bank(s)
// and the CHR ROM bank(s). Every failure is returned as a wrapped error;
// Load never panics.
func Load(r io.Reader) (*Cartridge, error) {
	if r == nil {
		return nil, errors.New("cartridge: nil reader")
	}

	header, err := ines.NewHeader(r)
	if err != nil {
		return nil, errors.Wrap(err, "cartridge: reading header")
	}

	if header.Trainer() {
		n, err := io.CopyN(ioutil.Discard, r, 512)
		if err != nil {
			return nil, errors.Wrap(err, "cartridge: discarding trainer")
		}
		if n != 512 {
			return nil, errors.Errorf("cartridge: short trainer, got %d of 512 bytes", n)
		}
	}

	memPRG := make([]uint8, header.PRGROMSize())
	if _, err := io.ReadFull(r, memPRG); err != nil {
		return nil, errors.Wrap(err, "cartridge: reading PRG ROM")
	}

	memCHR := make([]uint8, header.CHRROMSize())
	if header.CHRROMSize() > 0 {
		if _, err := io.ReadFull(r, memCHR); err != nil {
			return nil, errors.Wrap(err, "cartridge: reading CHR ROM")
		}
	} else {
		memCHR = make([]uint8, 8*1024)
	}

	m, err := newMapper(header)
	if err != nil {
		return nil, errors.Wrap(err, "cartridge: selecting mapper")
	}

	return &Cartridge{
		Header: header,
		memPRG: memPRG,
		memCHR: memCHR,
		mapper: m,
	}, nil
}

// newMapper selects the Mapper implementation for the header's mapper
// id. Only mapper 0 (NROM) is currently supported; every bank-switching
// mapper is out of scope for the CPU core.
func newMapper(header *ines.Header) (mapper.Mapper, error) {
	switch id := header.Mapper(); id {
	case 0:
		return mapper.NewMapper000(header.PRG, header.CHR), nil
	default:
		return nil, errors.Errorf("cartridge: unsupported mapper id %d (%s)", id, ines.MapperName(int(id)))
	}
}
