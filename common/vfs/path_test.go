package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnpackPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want UnpackedPath
	}{
		{
			name: "device root with segments",
			path: "sdmc:/a/b/c",
			want: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "a", Type: SegmentNormal},
				{Name: "b", Type: SegmentNormal},
				{Name: "c", Type: SegmentNormal},
			},
		},
		{
			name: "parent reference removes previous segment",
			path: "sdmc:/a/../b",
			want: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "b", Type: SegmentNormal},
			},
		},
		{
			name: "device root only",
			path: "sdmc:",
			want: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
			},
		},
		{
			name: "leading parent references are ignored",
			path: "../../sdmc:/a",
			want: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "a", Type: SegmentNormal},
			},
		},
		{
			name: "trailing slash keeps an empty segment",
			path: "sdmc:/",
			want: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "", Type: SegmentNormal},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnpackPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnpackPathInvalid(t *testing.T) {
	for _, path := range []string{"..", "../..", "a/.."} {
		_, err := UnpackPath(path)
		assert.ErrorIs(t, err, ErrInvalidPath, path)
	}
}

func TestPackPath(t *testing.T) {
	tests := []struct {
		name     string
		unpacked UnpackedPath
		addRoot  bool
		want     string
	}{
		{
			name:     "empty without root is the minimum path",
			unpacked: UnpackedPath{},
			addRoot:  false,
			want:     "/",
		},
		{
			name:     "root only without addRoot is the minimum path",
			unpacked: UnpackedPath{{Name: "sdmc:", Type: SegmentRoot}},
			addRoot:  false,
			want:     "/",
		},
		{
			name: "service-local path drops the root segment",
			unpacked: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "a", Type: SegmentNormal},
				{Name: "b", Type: SegmentNormal},
			},
			addRoot: false,
			want:    "/a/b",
		},
		{
			name: "addRoot keeps the device prefix",
			unpacked: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "a", Type: SegmentNormal},
			},
			addRoot: true,
			want:    "sdmc:/a",
		},
		{
			name: "invalid segments are skipped",
			unpacked: UnpackedPath{
				{Name: "sdmc:", Type: SegmentRoot},
				{Name: "bogus", Type: SegmentInvalid},
				{Name: "a", Type: SegmentNormal},
			},
			addRoot: false,
			want:    "/a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PackPath(tt.unpacked, tt.addRoot))
		})
	}
}

// Repacking the same unpacked path must always yield the same string.
func TestPackPathIdempotent(t *testing.T) {
	unpacked, err := UnpackPath("sdmc:/dir/sub/file.bin")
	require.NoError(t, err)
	first := PackPath(unpacked, false)
	second := PackPath(unpacked, false)
	assert.Equal(t, first, second)
	assert.Equal(t, "/dir/sub/file.bin", first)
}
