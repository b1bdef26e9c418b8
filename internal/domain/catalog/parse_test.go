//go:build unit

package catalog_test

import (
	"testing"

	"barberbook/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDurationMinutes(t *testing.T) {
	cases := []struct {
		raw       string
		want      int
		defaulted bool
	}{
		{"45 Menit", 45, false},
		{"60m", 60, false},
		{"30", 30, false},
		{" 90 MENIT ", 90, false},
		{"sekitar 45", 45, false},
		{"", catalog.DefaultDurationMinutes, true},
		{"cepat", catalog.DefaultDurationMinutes, true},
		{"0", catalog.DefaultDurationMinutes, true},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			got, defaulted := catalog.ParseDurationMinutes(c.raw)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.defaulted, defaulted)
		})
	}
}

func TestParsePriceMinor(t *testing.T) {
	cases := []struct {
		raw       string
		want      int64
		defaulted bool
	}{
		{"70.000", 70000, false},
		{"70,000", 70000, false},
		{"Rp 70000", 70000, false},
		{"85000", 85000, false},
		{"0", 0, false},
		{"", catalog.DefaultPriceMinor, true},
		{"gratis", catalog.DefaultPriceMinor, true},
		{"-500", catalog.DefaultPriceMinor, true},
	}
	for _, c := range cases {
		t.Run(c.raw, func(t *testing.T) {
			got, defaulted := catalog.ParsePriceMinor(c.raw)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.defaulted, defaulted)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("parses rows and keeps order", func(t *testing.T) {
		raw := []catalog.RawService{
			{Name: "Signature Cut", Price: "80.000", Duration: "45 Menit"},
			{Name: "Executive Contour", Price: "100.000", Duration: "60 Menit"},
		}
		loaded, reports := catalog.Load(raw)
		assert.Empty(t, reports)
		assert.Equal(t, 2, loaded.Len())
		assert.Equal(t, []string{"Signature Cut", "Executive Contour"}, loaded.Names())

		def, err := loaded.Lookup("Signature Cut")
		require.NoError(t, err)
		assert.Equal(t, int64(80000), def.PriceMinor)
		assert.Equal(t, 45, def.DurationMinutes)
	})

	t.Run("reports substituted defaults", func(t *testing.T) {
		raw := []catalog.RawService{
			{Name: "Mystery Service", Price: "???", Duration: "fast"},
		}
		loaded, reports := catalog.Load(raw)
		require.Len(t, reports, 2)
		assert.Equal(t, "Mystery Service", reports[0].Service)

		def, err := loaded.Lookup("Mystery Service")
		require.NoError(t, err)
		assert.Equal(t, catalog.DefaultDurationMinutes, def.DurationMinutes)
		assert.Equal(t, int64(catalog.DefaultPriceMinor), def.PriceMinor)
	})

	t.Run("skips nameless rows", func(t *testing.T) {
		loaded, _ := catalog.Load([]catalog.RawService{{Name: "  ", Price: "5000", Duration: "30"}})
		assert.Equal(t, 0, loaded.Len())
	})

	t.Run("last duplicate wins without double listing", func(t *testing.T) {
		raw := []catalog.RawService{
			{Name: "Cut", Price: "50000", Duration: "30"},
			{Name: "Cut", Price: "60000", Duration: "45"},
		}
		loaded, _ := catalog.Load(raw)
		assert.Equal(t, []string{"Cut"}, loaded.Names())
		def, err := loaded.Lookup("Cut")
		require.NoError(t, err)
		assert.Equal(t, int64(60000), def.PriceMinor)
	})
}

func TestDurationOrDefault(t *testing.T) {
	loaded, _ := catalog.Load([]catalog.RawService{{Name: "Cut", Price: "50000", Duration: "30"}})
	assert.Equal(t, 30, loaded.DurationOrDefault("Cut", 45))
	assert.Equal(t, 45, loaded.DurationOrDefault("Retired Service", 45))
}
