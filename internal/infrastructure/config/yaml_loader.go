package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	cfgpkg "github.com/alexisbeaulieu97/playerui/internal/config"
	"github.com/alexisbeaulieu97/playerui/internal/ports"
	uierrors "github.com/alexisbeaulieu97/playerui/pkg/errors"
)

// YAMLLoader implements the ConfigLoader port by reading YAML files from disk.
type YAMLLoader struct {
	logger ports.Logger
}

func NewYAMLLoader(logger ports.Logger) *YAMLLoader {
	return &YAMLLoader{logger: logger}
}

func (l *YAMLLoader) Load(ctx context.Context, path string) (*cfgpkg.UIConfig, error) {
	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logDebug(ctx, "loading ui configuration", map[string]interface{}{"path": path})

	cfg, err := cfgpkg.ParseConfig(path)
	if err != nil {
		l.logError(ctx, "failed to load ui configuration", err, map[string]interface{}{"path": path})
		return nil, err
	}

	if err := contextCheck(ctx); err != nil {
		return nil, err
	}

	l.logInfo(ctx, "ui configuration loaded", map[string]interface{}{
		"path":            path,
		"skin":            cfg.Skin,
		"recommendations": len(cfg.Recommendations),
	})
	return cfg, nil
}

func (l *YAMLLoader) Validate(ctx context.Context, path string) error {
	if err := contextCheck(ctx); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		l.logError(ctx, "configuration path stat failed", err, map[string]interface{}{"path": path})
		return uierrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return uierrors.NewValidationError("path", fmt.Sprintf("%s is a directory", path), nil)
	}

	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		l.logDebug(ctx, "validating ui configuration", map[string]interface{}{"path": path})
		_, err = l.Load(ctx, path)
	default:
		err = uierrors.NewValidationError("path", fmt.Sprintf("unsupported configuration file extension %q", ext), nil)
	}

	return err
}

var _ ports.ConfigLoader = (*YAMLLoader)(nil)

func contextCheck(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("load cancelled: %w", err)
	}
	return nil
}

func (l *YAMLLoader) logDebug(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Debug(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logInfo(ctx context.Context, msg string, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, msg, flattenFields(fields)...)
}

func (l *YAMLLoader) logError(ctx context.Context, msg string, err error, fields map[string]interface{}) {
	if l.logger == nil {
		return
	}
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["error"] = err
	l.logger.Error(ctx, msg, flattenFields(payload)...)
}

func flattenFields(fields map[string]interface{}) []interface{} {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]interface{}, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
