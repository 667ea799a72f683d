package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	panelerrors "github.com/mooh971/Go-panel/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	goVersionPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	unitNamePattern  = regexp.MustCompile(`^[a-z0-9@_.\-]+\.service$`)
	ownerSpecPattern = regexp.MustCompile(`^[a-z_][a-z0-9_-]*(?::[a-z_][a-z0-9_-]*)?$`)
	sshGitPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+:[a-zA-Z0-9._/~-]+$`)
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("go_version", func(fl validator.FieldLevel) bool {
			return goVersionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("unit_name", func(fl validator.FieldLevel) bool {
			return unitNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("owner_spec", func(fl validator.FieldLevel) bool {
			return ownerSpecPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("abs_path", func(fl validator.FieldLevel) bool {
			return isValidAbsPath(fl.Field().String())
		})

		_ = v.RegisterValidation("git_url", func(fl validator.FieldLevel) bool {
			urlStr := fl.Field().String()
			if urlStr == "" {
				return true // Allow empty if not required
			}

			if strings.TrimSpace(urlStr) == "" {
				return false
			}

			// Network URLs: http/https with a non-empty host.
			if parsedURL, err := url.Parse(urlStr); err == nil {
				scheme := strings.ToLower(parsedURL.Scheme)
				if scheme == "http" || scheme == "https" {
					if parsedURL.Host != "" {
						return true
					}
				}
			}

			// SSH-style git URLs (user@host:path).
			return sshGitPattern.MatchString(urlStr)
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the
// provisioning document.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return panelerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Source.Repository == "" {
		if cfg.Source.Branch != "" {
			return panelerrors.NewValidationError("source.branch", "branch requires source.repository", nil)
		}
		if cfg.Source.Depth != 0 {
			return panelerrors.NewValidationError("source.depth", "depth requires source.repository", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return panelerrors.NewValidationError(field, msg, err)
	}

	return panelerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

// isValidAbsPath performs syntactic validation of absolute paths without
// filesystem access.
func isValidAbsPath(path string) bool {
	if path == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	if !strings.HasPrefix(path, "/") {
		return false
	}

	return !strings.Contains(path, "/../") && !strings.HasSuffix(path, "/..")
}
