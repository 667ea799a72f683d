package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	panelerrors "github.com/mooh971/Go-panel/pkg/errors"
)

func TestValidateConfig(t *testing.T) {
	t.Parallel()

	valid := Default()

	badUnit := Default()
	badUnit.Service.Unit = "gopanel"

	badOwner := Default()
	badOwner.Install.Owner = "root:"

	badRepo := Default()
	badRepo.Source.Repository = "   "

	sshRepo := Default()
	sshRepo.Source.Repository = "git@github.com:mooh971/Go-panel.git"

	branchWithoutRepo := Default()
	branchWithoutRepo.Source.Branch = "main"

	depthWithoutRepo := Default()
	depthWithoutRepo.Source.Depth = 1

	traversalRoot := Default()
	traversalRoot.Toolchain.Root = "/usr/local/../go"

	cases := []struct {
		name      string
		cfg       *Config
		wantField string
	}{
		{name: "defaults validate cleanly", cfg: valid},
		{name: "unit name needs .service suffix", cfg: badUnit, wantField: "unit"},
		{name: "owner spec rejects trailing colon", cfg: badOwner, wantField: "owner"},
		{name: "repository rejects whitespace", cfg: badRepo, wantField: "repository"},
		{name: "ssh repository urls accepted", cfg: sshRepo},
		{name: "branch requires repository", cfg: branchWithoutRepo, wantField: "source.branch"},
		{name: "depth requires repository", cfg: depthWithoutRepo, wantField: "source.depth"},
		{name: "toolchain root rejects traversal", cfg: traversalRoot, wantField: "root"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateConfig(tc.cfg)
			if tc.wantField == "" {
				require.NoError(t, err)
				return
			}

			var validationErr *panelerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Contains(t, validationErr.Field, tc.wantField)
		})
	}
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *panelerrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
}
