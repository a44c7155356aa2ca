// This file is part of Ticcore.
//
// Ticcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ticcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ticcore.  If not, see <https://www.gnu.org/licenses/>.

package soundload

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/jetsetilly/ticcore/curated"
	"github.com/jetsetilly/ticcore/logger"
)

// Sentinal errors.
const (
	UnsupportedFormat = "soundload: unsupported format: %s"
	DecodeError       = "soundload: %s: %v"
)

// Sound is a decoded sound.
type Sound struct {
	Name string

	// the rate of the samples after resampling
	Rate int

	Samples []int8
}

// Load decodes the named file. The format is decided by the file extension.
func Load(filename string, rate int) (Sound, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Sound{}, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	snd, err := Decode(f, filepath.Ext(filename), rate)
	if err != nil {
		return Sound{}, err
	}
	snd.Name = filepath.Base(filename)

	logger.Logf(logger.Allow, "soundload", "%s: %d samples at %dHz", snd.Name, len(snd.Samples), snd.Rate)

	return snd, nil
}

// Decode sound data of the specified format (a file extension such as
// ".wav") and resample to rate.
func Decode(r io.ReadSeeker, format string, rate int) (Sound, error) {
	var data []int16
	var srcRate int
	var err error

	format = strings.ToLower(format)
	switch format {
	case ".wav":
		data, srcRate, err = decodeWAV(r)
	case ".mp3":
		data, srcRate, err = decodeMP3(r)
	default:
		return Sound{}, curated.Errorf(UnsupportedFormat, format)
	}
	if err != nil {
		return Sound{}, curated.Errorf(DecodeError, format, err)
	}

	return Sound{
		Rate:    rate,
		Samples: Resample(data, srcRate, rate),
	}, nil
}

func decodeWAV(r io.ReadSeeker) ([]int16, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errors.New("not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, err
	}

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	// first channel only
	data := make([]int16, 0, len(buf.Data)/chans)
	for i := 0; i < len(buf.Data); i += chans {
		v := buf.Data[i]
		switch dec.BitDepth {
		case 8:
			// eight bit wav data is unsigned
			v = (v - 128) << 8
		case 24:
			v >>= 8
		case 32:
			v >>= 16
		}
		data = append(data, int16(v))
	}

	return data, int(dec.SampleRate), nil
}

func decodeMP3(r io.Reader) ([]int16, int, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, err
	}

	var data []int16
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)

		// the decoded stream is always 16bit little endian stereo. the left
		// channel is the first two bytes of every four
		for i := 0; i+1 < n; i += 4 {
			data = append(data, int16(uint16(chunk[i])|uint16(chunk[i+1])<<8))
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
	}

	return data, dec.SampleRate(), nil
}

// Resample sixteen bit samples at srcRate to eight bit samples at dstRate.
func Resample(data []int16, srcRate int, dstRate int) []int8 {
	if srcRate <= 0 || dstRate <= 0 || len(data) == 0 {
		return nil
	}

	n := int(int64(len(data)) * int64(dstRate) / int64(srcRate))
	out := make([]int8, n)
	for i := range out {
		out[i] = int8(data[int64(i)*int64(srcRate)/int64(dstRate)] >> 8)
	}
	return out
}
