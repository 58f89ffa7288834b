package vfs

import "strings"

// SegmentType classifies one "/"-delimited unit of a logical path.
type SegmentType int

const (
	SegmentInvalid SegmentType = iota
	// SegmentRoot is a device segment. Its source token ended with the
	// device delimiter and the stored name keeps it ("sdmc:").
	SegmentRoot
	SegmentNormal
)

// The device delimiter terminating a root segment.
const rootNameSuffix = ":"

// PathSegment is one typed unit of an unpacked path.
type PathSegment struct {
	Name string
	Type SegmentType
}

// UnpackedPath is the ordered segment sequence produced by UnpackPath.
// Callers rely on the first element being a root segment to pick a device;
// resolution fails otherwise.
type UnpackedPath []PathSegment

func unpackPath(path string) UnpackedPath {
	var unpacked UnpackedPath
	for _, token := range strings.Split(path, "/") {
		switch {
		case strings.HasSuffix(token, rootNameSuffix):
			unpacked = append(unpacked, PathSegment{Name: token, Type: SegmentRoot})
		case token == "..":
			// Popping an empty sequence is silently ignored.
			if len(unpacked) > 0 {
				unpacked = unpacked[:len(unpacked)-1]
			}
		default:
			unpacked = append(unpacked, PathSegment{Name: token, Type: SegmentNormal})
		}
	}
	return unpacked
}

// UnpackPath splits a logical path into typed segments. A trailing ".."
// removes the previous segment. Fails with ErrInvalidPath if nothing
// remains.
func UnpackPath(path string) (UnpackedPath, error) {
	unpacked := unpackPath(path)
	if len(unpacked) == 0 {
		return nil, ErrInvalidPath
	}
	return unpacked, nil
}

// PackPath reassembles segments into a path string. Root segments are only
// emitted when addRoot is set; with addRoot unset the result is a
// service-local path with a single leading "/". A path with content never
// ends in "/" but the empty result stays exactly "/".
func PackPath(unpacked UnpackedPath, addRoot bool) string {
	var sb strings.Builder
	if !addRoot {
		sb.WriteByte('/')
	}
	for _, segment := range unpacked {
		switch segment.Type {
		case SegmentRoot:
			if addRoot {
				sb.WriteString(segment.Name)
				sb.WriteByte('/')
			}
		case SegmentNormal:
			sb.WriteString(segment.Name)
			sb.WriteByte('/')
		}
	}
	path := sb.String()
	if len(path) > 1 {
		path = path[:len(path)-1]
	}
	return path
}
