package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bft-labs/findclip/internal/domain"
)

const pgmMagic = "P5"

// decodePGM reads a binary PGM image.
// Header lines starting with '#' and empty lines are skipped. The size line
// may carry the maxval; otherwise maxval is expected on the next line.
func decodePGM(br *bufio.Reader, opts Options) (domain.Frame, error) {
	line, err := headerLine(br)
	if err != nil {
		return domain.Frame{}, err
	}
	if line != pgmMagic {
		return domain.Frame{}, fmt.Errorf("%w: magic %q", ErrBadMagic, line)
	}

	line, err = headerLine(br)
	if err != nil {
		return domain.Frame{}, err
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return domain.Frame{}, fmt.Errorf("%w: no dimension in %q", ErrBadHeader, line)
	}
	width, err1 := strconv.Atoi(fields[0])
	height, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return domain.Frame{}, fmt.Errorf("%w: no dimension in %q", ErrBadHeader, line)
	}

	maxval := ""
	if len(fields) >= 3 {
		maxval = fields[2]
	} else {
		if maxval, err = headerLine(br); err != nil {
			return domain.Frame{}, err
		}
	}
	if v, err := strconv.Atoi(strings.TrimSpace(maxval)); err != nil || v <= 0 || v > 255 {
		return domain.Frame{}, fmt.Errorf("%w: unsupported maxval %q", ErrBadHeader, maxval)
	}

	if opts.LumiOnly {
		height = lumaHeight(height)
	}
	pix := make([]uint8, width*height)
	if _, err := io.ReadFull(br, pix); err != nil {
		return domain.Frame{}, fmt.Errorf("%w: want %d bytes: %v", ErrShortRead, len(pix), err)
	}
	return domain.NewFrame("", width, height, pix)
}

// headerLine returns the next header line that is neither a comment nor empty.
func headerLine(br *bufio.Reader) (string, error) {
	for {
		line, err := br.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", fmt.Errorf("%w: %v", ErrBadHeader, err)
		}
		line = strings.TrimRight(line, "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			if err == io.EOF {
				return "", fmt.Errorf("%w: %v", ErrBadHeader, err)
			}
			continue
		}
		return line, nil
	}
}

// Encode writes f as a binary PGM image.
func Encode(w io.Writer, f domain.Frame) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d 255\n", pgmMagic, f.Width, f.Height); err != nil {
		return err
	}
	if _, err := bw.Write(f.Pix); err != nil {
		return err
	}
	return bw.Flush()
}

func lumaHeight(h int) int {
	return h * 2 / 3
}
