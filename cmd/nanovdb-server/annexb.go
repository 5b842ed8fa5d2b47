package main

import (
	"bytes"
	"io"
	"os"
)

// loadAnnexB reads an H.264 Annex-B byte stream and splits it into NAL
// units on 3- and 4-byte start codes. Each unit keeps its start code so
// the viewer-side muxer sees a valid stream. Width and height are nominal:
// the server treats them as opaque metadata and the muxer reads the real
// dimensions from the SPS.
func loadAnnexB(path string) (nals [][]byte, width, height uint32, err error) {
	var data []byte
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, 0, 0, err
	}

	width, height = 1920, 1080

	startCode := []byte{0x00, 0x00, 0x01}
	start := bytes.Index(data, startCode)
	if start < 0 {
		// No start codes at all; push the blob as one unit.
		return [][]byte{data}, width, height, nil
	}
	// A 4-byte start code begins one byte earlier.
	if start > 0 && data[start-1] == 0x00 {
		start--
	}

	for start < len(data) {
		next := bytes.Index(data[start+3:], startCode)
		if next < 0 {
			nals = append(nals, data[start:])
			break
		}
		end := start + 3 + next
		if end > 0 && data[end-1] == 0x00 {
			end--
		}
		nals = append(nals, data[start:end])
		start = end
	}

	return nals, width, height, nil
}
