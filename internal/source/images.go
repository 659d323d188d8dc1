package source

import "bytes"

var (
	dctMarker       = []byte("/DCTDecode")
	streamKeyword   = []byte("stream")
	endstreamMarker = []byte("endstream")
)

// extractJPEGStreams pulls DCTDecode (JPEG) image streams out of the raw
// PDF bytes. Scanned drawings embed each page as a single full-page image
// XObject, so the embedded JPEGs are sufficient OCR input and no page
// rasterizer is needed. Streams that do not start with a JPEG SOI marker
// are skipped.
func extractJPEGStreams(content []byte) [][]byte {
	out := make([][]byte, 0)
	offset := 0
	for {
		i := bytes.Index(content[offset:], dctMarker)
		if i < 0 {
			break
		}
		pos := offset + i
		offset = pos + len(dctMarker)

		s := bytes.Index(content[pos:], streamKeyword)
		if s < 0 {
			break
		}
		data := content[pos+s+len(streamKeyword):]
		if len(data) > 0 && data[0] == '\r' {
			data = data[1:]
		}
		if len(data) > 0 && data[0] == '\n' {
			data = data[1:]
		}

		end := bytes.Index(data, endstreamMarker)
		if end < 0 {
			break
		}
		body := bytes.TrimRight(data[:end], "\r\n")
		if len(body) > 2 && body[0] == 0xFF && body[1] == 0xD8 {
			out = append(out, body)
		}
		offset = pos + s + end
	}
	return out
}
