package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/dcorder/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const trackHCL = `
configuration "DI_TRACK" {
  caption     = "Development track"
  description = "Nightly"

  build_variant "default" {
    options = {
      "com.sap.jdk.home_path_key" = "JDK1.8_HOME"
      "parallel"                  = 4
      "debug"                     = true
    }
  }
}
`

const appHCL = `
compartment "example.org" "MY_SC" {
  state   = "source"
  caption = "My software component"
  uses    = ["sap.com_SAP_BUILDT_1"]

  component "example.org" "lib/jetm" {
    type    = "Java"
    caption = "JETM library"

    public_part "api" {
      type = "compilation"
    }

    uses "sap.com:tc/bi/core" {
      public_part = "api"
    }

    uses "example.org:lib/util" {
      public_part = "api"
      build_time  = false
      run_time    = true
      deploy_time = true
    }
  }

  component "example.org" "lib/util" {}
}
`

const archiveHCL = `
compartment "sap.com" "SAP_BUILDT" {
  state = "archive"

  component "sap.com" "tc/bi/core" {
    type = "External Library"
    public_part "api" {}
  }
}
`

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	trackFile := writeFile(t, dir, "track.hcl", trackHCL)
	appFile := writeFile(t, dir, "sc/app.hcl", appHCL)
	archiveFile := writeFile(t, dir, "sc/archive.hcl", archiveHCL)
	writeFile(t, dir, "README.md", "not a track file")

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	t.Run("configuration", func(t *testing.T) {
		require.NotNil(t, model.Configuration)
		assert.Equal(t, "DI_TRACK", model.Configuration.Name)
		assert.Equal(t, "Development track", model.Configuration.Caption)
		assert.Equal(t, "Nightly", model.Configuration.Description)
		require.NotNil(t, model.Configuration.BuildVariant)
		assert.Equal(t, "default", model.Configuration.BuildVariant.Name)
		assert.Equal(t, map[string]string{
			"com.sap.jdk.home_path_key": "JDK1.8_HOME",
			"parallel":                  "4",
			"debug":                     "true",
		}, model.Configuration.BuildVariant.Options)
	})

	t.Run("compartments in file order", func(t *testing.T) {
		require.Len(t, model.Compartments, 2)
		app, archive := model.Compartments[0], model.Compartments[1]

		assert.Equal(t, "example.org", app.Vendor)
		assert.Equal(t, "MY_SC", app.SoftwareComponent)
		assert.Equal(t, "source", app.State)
		assert.Equal(t, "My software component", app.Caption)
		assert.Equal(t, []string{"sap.com_SAP_BUILDT_1"}, app.Uses)
		assert.Equal(t, appFile, app.FilePath)

		assert.Equal(t, "archive", archive.State)
		assert.Equal(t, archiveFile, archive.FilePath)
		assert.Equal(t, 3, model.ComponentCount())
	})

	t.Run("components and dependencies", func(t *testing.T) {
		app := model.Compartments[0]
		require.Len(t, app.Components, 2)
		jetm := app.Components[0]

		assert.Equal(t, "example.org", jetm.Vendor)
		assert.Equal(t, "lib/jetm", jetm.Name)
		assert.Equal(t, "Java", jetm.Type)
		assert.Equal(t, []*config.PublicPart{{Name: "api", Type: "compilation"}}, jetm.PublicParts)
		assert.Equal(t, []*config.Dependency{
			{Target: "sap.com:tc/bi/core", PublicPart: "api", BuildTime: true},
			{Target: "example.org:lib/util", PublicPart: "api", RunTime: true, DeployTime: true},
		}, jetm.Dependencies)

		util := app.Components[1]
		assert.Empty(t, util.Dependencies)
		assert.Empty(t, util.Type)
	})

	t.Run("single file path", func(t *testing.T) {
		single, err := NewLoader().Load(context.Background(), trackFile)
		require.NoError(t, err)
		assert.Empty(t, single.Compartments)
		assert.NotNil(t, single.Configuration)
	})
}

func TestLoader_Load_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			files:   map[string]string{"bad.hcl": `compartment "v" {`},
			wantErr: "failed to parse HCL file",
		},
		{
			name:    "missing label",
			files:   map[string]string{"bad.hcl": `compartment "v" {}`},
			wantErr: "failed to decode HCL file",
		},
		{
			name:    "unknown attribute",
			files:   map[string]string{"bad.hcl": `compartment "v" "sc" { colour = "red" }`},
			wantErr: "failed to decode HCL file",
		},
		{
			name: "duplicate configuration",
			files: map[string]string{
				"a.hcl": `configuration "one" {}`,
				"b.hcl": `configuration "two" {}`,
			},
			wantErr: "configuration already declared",
		},
		{
			name:    "misspelled top-level block",
			files:   map[string]string{"bad.hcl": `compartmnet "v" "sc" {}`},
			wantErr: "Unsupported block type",
		},
		{
			name:    "no track files",
			files:   map[string]string{"notes.txt": "hello"},
			wantErr: ErrNoFiles.Error(),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writeFile(t, dir, name, content)
			}

			model, err := NewLoader().Load(context.Background(), dir)

			require.Error(t, err)
			assert.Nil(t, model)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoader_Load_Diagnostics(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantPos string
		wantErr string
	}{
		{
			name: "invalid compartment state",
			content: `compartment "v" "sc" {
  state = "frozen"
}`,
			wantPos: "a.hcl:1,",
			wantErr: "Invalid compartment state",
		},
		{
			name: "invalid public part type",
			content: `compartment "v" "sc" {
  component "v" "lib" {
    public_part "api" {
      type = "binary"
    }
  }
}`,
			wantPos: "a.hcl:3,",
			wantErr: "Invalid public part type",
		},
		{
			name: "dependency target without vendor",
			content: `compartment "v" "sc" {
  component "v" "app" {
    uses "lib" {}
  }
}`,
			wantPos: "a.hcl:3,",
			wantErr: "Invalid dependency target",
		},
		{
			name: "empty component name",
			content: `compartment "v" "sc" {
  component "v" "" {}
}`,
			wantPos: "a.hcl:2,",
			wantErr: "Missing component name",
		},
		{
			name: "options of the wrong shape",
			content: `configuration "one" {
  build_variant "default" {
    options = ["a", "b"]
  }
}`,
			wantPos: "a.hcl:3,",
			wantErr: "Invalid build variant options",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "a.hcl", tc.content)

			model, err := NewLoader().Load(context.Background(), dir)

			require.Error(t, err)
			assert.Nil(t, model)
			assert.Contains(t, err.Error(), "invalid HCL file")
			assert.Contains(t, err.Error(), tc.wantPos)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("every problem in a file is reported", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "a.hcl", `compartment "v" "sc" {
  state = "frozen"
  component "v" "app" {
    uses "lib" {}
  }
}`)

		_, err := NewLoader().Load(context.Background(), dir)

		require.Error(t, err)
		var diags hcl.Diagnostics
		require.ErrorAs(t, err, &diags)
		require.Len(t, diags, 2)
		assert.Equal(t, "Invalid compartment state", diags[0].Summary)
		assert.Equal(t, 1, diags[0].Subject.Start.Line)
		assert.Equal(t, "Invalid dependency target", diags[1].Summary)
		assert.Equal(t, 4, diags[1].Subject.Start.Line)
	})
}

func TestLoader_Load_EmptyOptions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "track.hcl", `
configuration "one" {
  build_variant "default" {}
}`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.NotNil(t, model.Configuration.BuildVariant)
	assert.Empty(t, model.Configuration.BuildVariant.Options)
	assert.NotNil(t, model.Configuration.BuildVariant.Options)
}
