// Package toml persists the walker session: cached profile display fields in
// an atomically replaced TOML file, the bearer token in a secret store.
package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/paseo-app/paseo-cli/internal/domain"
	"github.com/paseo-app/paseo-cli/internal/ports"
)

const (
	configName      = "config"
	configType      = "toml"
	profilePathKey  = "profile.path"
	profileFileMode = 0o600
	profileDirMode  = 0o700
	configDirName   = ".paseo"
	profileFileName = "profile.toml"
	tempFilePattern = ".profile-*.toml.tmp"

	// TokenSecretKey is where the bearer token lives in the secret store.
	TokenSecretKey = "paseo/walker/token"
)

type Store struct {
	profilePath string
	secrets     ports.SecretStore
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.SessionStore = (*Store)(nil)

func NewStore(cfg *viper.Viper, secrets ports.SecretStore) (*Store, error) {
	if secrets == nil {
		return nil, errors.New("secret store is required")
	}
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, configDirName, profileFileName)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDirName))
	cfg.SetDefault(profilePathKey, defaultPath)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	profilePath := cfg.GetString(profilePathKey)
	if profilePath == "" {
		return nil, errors.New("profile path is empty")
	}
	profilePath, err = filepath.Abs(profilePath)
	if err != nil {
		return nil, fmt.Errorf("resolve profile path: %w", err)
	}
	profilePath = filepath.Clean(profilePath)

	return &Store{
		profilePath: profilePath,
		secrets:     secrets,
		mu:          lockForPath(profilePath),
	}, nil
}

func (s *Store) SaveToken(ctx context.Context, token string) error {
	if err := s.secrets.Put(ctx, TokenSecretKey, token); err != nil {
		return fmt.Errorf("store session token: %w", err)
	}
	return nil
}

func (s *Store) Token(ctx context.Context) (string, error) {
	token, err := s.secrets.Get(ctx, TokenSecretKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read session token: %w", err)
	}
	return token, nil
}

func (s *Store) HasToken(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

func (s *Store) SaveUserInfo(ctx context.Context, info domain.CachedProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	file := fileSchema{
		Profile: profileSchema{
			Name:  info.Name,
			Email: info.Email,
			Photo: info.Photo,
		},
	}

	return s.writeSchema(file)
}

// UserInfo returns the cached display fields, or zero values when nothing is
// cached or the cache is unreadable. Readers tolerate absence.
func (s *Store) UserInfo(ctx context.Context) domain.CachedProfile {
	if ctx.Err() != nil {
		return domain.CachedProfile{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.readSchema()
	if err != nil {
		return domain.CachedProfile{}
	}

	return domain.CachedProfile{
		Name:  file.Profile.Name,
		Email: file.Profile.Email,
		Photo: file.Profile.Photo,
	}
}

// Clear removes the token and every cached display field. Safe to call with
// no session present.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.secrets.Delete(ctx, TokenSecretKey); err != nil {
		return fmt.Errorf("delete session token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.profilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove cached profile: %w", err)
	}

	return nil
}

func (s *Store) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(s.profilePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read profile file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode profile file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

// writeSchema replaces the profile file through a temp-file rename so a
// concurrent reader never observes a partial write.
func (s *Store) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(s.profilePath), profileDirMode); err != nil {
		return fmt.Errorf("create profile directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode profile file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(s.profilePath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp profile file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp profile file: %w", err)
	}

	if err := tempFile.Chmod(profileFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp profile file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp profile file: %w", err)
	}

	if err := os.Rename(tempName, s.profilePath); err != nil {
		return fmt.Errorf("replace profile file: %w", err)
	}

	cleanup = false

	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
