package backlight

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rianixia/displayadaptor/pkg/config"
	"github.com/rianixia/displayadaptor/pkg/sysfs"
	"github.com/rianixia/displayadaptor/pkg/sysprop"
)

type fakeFS map[string]int

func (f fakeFS) ReadInt(path string) (int, error) {
	v, ok := f[path]
	if !ok {
		return 0, sysfs.ErrNotNumeric
	}
	return v, nil
}

func (f fakeFS) Exists(path string) bool {
	_, ok := f[path]
	return ok
}

func (f fakeFS) Create(path string) error {
	f[path] = 0
	return nil
}

func TestDetectRange(t *testing.T) {
	tests := []struct {
		name      string
		props     map[string]string
		fs        fakeFS
		want      Range
		wantCache []sysprop.SetCall
	}{
		{
			name: "sysfs detection is cached",
			fs:   fakeFS{sysfs.MinBrightnessPath: 4, sysfs.MaxBrightnessPath: 2047},
			want: Range{4, 2047},
			wantCache: []sysprop.SetCall{
				{Key: config.HardwareMin.Name, Value: "4"},
				{Key: config.HardwareMax.Name, Value: "2047"},
			},
		},
		{
			name: "zero min is promoted",
			fs:   fakeFS{sysfs.MinBrightnessPath: 0, sysfs.MaxBrightnessPath: 1023},
			want: Range{1, 1023},
			wantCache: []sysprop.SetCall{
				{Key: config.HardwareMin.Name, Value: "1"},
				{Key: config.HardwareMax.Name, Value: "1023"},
			},
		},
		{
			name: "cached values win over sysfs",
			props: map[string]string{
				config.HardwareMin.Name: "2",
				config.HardwareMax.Name: "4095",
			},
			fs:   fakeFS{sysfs.MinBrightnessPath: 4, sysfs.MaxBrightnessPath: 2047},
			want: Range{2, 4095},
		},
		{
			name: "custom max wins over cache",
			props: map[string]string{
				config.CustomDeviceMax.Name: "800",
				config.HardwareMax.Name:     "4095",
			},
			fs:   fakeFS{sysfs.MinBrightnessPath: 1},
			want: Range{1, 800},
			wantCache: []sysprop.SetCall{
				{Key: config.HardwareMin.Name, Value: "1"},
			},
		},
		{
			name: "non-positive custom max is ignored",
			props: map[string]string{
				config.CustomDeviceMax.Name: "0",
				config.HardwareMin.Name:     "1",
				config.HardwareMax.Name:     "4095",
			},
			fs:   fakeFS{},
			want: Range{1, 4095},
		},
		{
			name: "nothing readable",
			fs:   fakeFS{},
			want: Range{DefaultMin, DefaultMax},
		},
		{
			name: "degenerate cache resets",
			props: map[string]string{
				config.HardwareMin.Name: "600",
				config.HardwareMax.Name: "511",
			},
			fs:   fakeFS{},
			want: Range{DefaultMin, DefaultMax},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := sysprop.NewMemory(tt.props)
			got := DetectRange(config.NewProperties(store), tt.fs, quietLogger())

			assert.Equal(t, tt.want, got)
			if tt.wantCache == nil {
				assert.Empty(t, store.Sets())
			} else {
				assert.Equal(t, tt.wantCache, store.Sets())
			}
		})
	}
}
