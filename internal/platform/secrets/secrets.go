package secrets

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/petetru/careermap-backend/internal/platform/envutil"
	"github.com/petetru/careermap-backend/internal/platform/logger"
)

// ErrNotFound means neither the secrets file nor the environment yielded a
// value for the requested name.
var ErrNotFound = errors.New("secret not found")

// Resolver looks a secret up in a YAML secrets file first and falls back to
// the process environment. The file is re-read on every lookup so a rotated
// key takes effect without a restart.
type Resolver struct {
	log  *logger.Logger
	path string
}

func NewResolver(log *logger.Logger) *Resolver {
	path := envutil.Str("SECRETS_FILE", "secrets.yaml")
	var l *logger.Logger
	if log != nil {
		l = log.With("service", "SecretsResolver")
	}
	return &Resolver{log: l, path: path}
}

func (r *Resolver) Lookup(name string) (string, error) {
	if v := r.fromFile(name); v != "" {
		return v, nil
	}
	if v := strings.TrimSpace(os.Getenv(name)); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%w: %s (checked %s and environment)", ErrNotFound, name, r.path)
}

func (r *Resolver) fromFile(name string) string {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return ""
	}
	vals := map[string]string{}
	if err := yaml.Unmarshal(raw, &vals); err != nil {
		if r.log != nil {
			r.log.Warn("secrets file is not valid YAML, falling back to environment", "path", r.path, "error", err)
		}
		return ""
	}
	return strings.TrimSpace(vals[name])
}
