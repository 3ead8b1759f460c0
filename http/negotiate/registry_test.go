package negotiate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/switchbacklabs/switchback"
	"github.com/switchbacklabs/switchback/http/negotiate"
)

func TestRegistryRegister(t *testing.T) {
	tcs := []struct {
		name   string
		setup  func(*negotiate.Registry)
		assert func(*testing.T, *negotiate.Registry)
	}{
		{
			name:  "Zero-Value",
			setup: func(reg *negotiate.Registry) {},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				require.True(t, reg.Empty())
				require.Zero(t, reg.Len())
				require.Zero(t, reg.Default())
				require.Empty(t, reg.Keys())
			},
		},
		{
			name: "First-Is-Default",
			setup: func(reg *negotiate.Registry) {
				reg.Register("html", "index.html")
				reg.Register("json", "people.json")
			},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				require.False(t, reg.Empty())
				require.Equal(t, 2, reg.Len())
				require.Equal(t, "html", reg.Default())
				require.Equal(t, []string{"html", "json"}, reg.Keys())
			},
		},
		{
			name: "Overwrite-Last-Wins",
			setup: func(reg *negotiate.Registry) {
				reg.Register("html", "index.html")
				reg.Register("json", "people.json")
				reg.Register("json", "people.v2.json")
			},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				tmpl, ok := reg.Lookup("json")
				require.True(t, ok)
				require.Equal(t, "people.v2.json", tmpl)
				require.Equal(t, []string{"html", "json"}, reg.Keys())
				require.Equal(t, "html", reg.Default())
			},
		},
		{
			name: "Reregister-Keeps-Default",
			setup: func(reg *negotiate.Registry) {
				reg.Register("html", "index.html")
				reg.Register("html", "home.html")
			},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				require.Equal(t, "html", reg.Default())
				require.Equal(t, 1, reg.Len())

				tmpl, ok := reg.Lookup("html")
				require.True(t, ok)
				require.Equal(t, "home.html", tmpl)
			},
		},
		{
			name: "Explicit-Default-Wins",
			setup: func(reg *negotiate.Registry) {
				reg.Register("html", "index.html")
				reg.RegisterDefault("json", "people.json")
			},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				require.Equal(t, "json", reg.Default())

				tmpl, err := reg.DefaultTemplate()
				require.Nil(t, err)
				require.Equal(t, "people.json", tmpl)
			},
		},
		{
			name: "Explicit-Default-First",
			setup: func(reg *negotiate.Registry) {
				reg.RegisterDefault("xml", "people.xml")
				reg.Register("html", "index.html")
			},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				require.Equal(t, "xml", reg.Default())
			},
		},
		{
			name: "Zero-Value-Key-Elided",
			setup: func(reg *negotiate.Registry) {
				reg.Register("", "index.html")
			},
			assert: func(t *testing.T, reg *negotiate.Registry) {
				require.True(t, reg.Empty())
				require.Zero(t, reg.Default())
			},
		},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			reg := negotiate.NewRegistry()
			tc.setup(reg)
			tc.assert(t, reg)
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	// Arrange
	reg := negotiate.NewRegistry()
	reg.Register("html", "index.html")

	// Act + Assert
	tmpl, ok := reg.Lookup("html")
	require.True(t, ok)
	require.Equal(t, "index.html", tmpl)

	tmpl, ok = reg.Lookup("json")
	require.False(t, ok)
	require.Zero(t, tmpl)

	require.True(t, reg.Has("html"))
	require.False(t, reg.Has("json"))
}

func TestRegistryDefaultTemplate(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		reg := negotiate.NewRegistry()

		tmpl, err := reg.DefaultTemplate()
		require.ErrorIs(t, err, switchback.ErrBadConfig)
		require.Zero(t, tmpl)
	})

	t.Run("Never-Fails-Once-Registered", func(t *testing.T) {
		reg := negotiate.NewRegistry()
		for _, key := range []string{"html", "json", "xml", "txt"} {
			reg.Register(key, key+".tmpl")

			tmpl, err := reg.DefaultTemplate()
			require.Nil(t, err)
			require.Equal(t, "html.tmpl", tmpl)
		}

		reg.RegisterDefault("json", "people.json")

		tmpl, err := reg.DefaultTemplate()
		require.Nil(t, err)
		require.Equal(t, "people.json", tmpl)
	})
}
