package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"remiro-ai/internal/domain"
)

func newUserID() string { return uuid.NewString() }

// ErrProfileNotFound indica que no existe perfil para el usuario pedido.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileStore define la persistencia de perfiles de evaluacion.
type ProfileStore interface {
	Create(name string) (*domain.UserProfile, error)
	Load(userID string) (*domain.UserProfile, error)
	Save(profile *domain.UserProfile) error
	ListUsers() ([]domain.User, error)
}

// FileStore guarda cada perfil como JSON plano en
// <dataDir>/users/<slug>_<uuid8>/profile.json.
//
// Las escrituras son atomicas (archivo temporal + rename) y van protegidas
// por mutex: dos handlers concurrentes no pueden dejar un perfil corrupto.
type FileStore struct {
	usersDir string
	logger   *zap.Logger

	mu   sync.Mutex
	dirs map[string]string // user_id -> carpeta del usuario
}

// NewFileStore crea el arbol de directorios si no existe.
func NewFileStore(dataDir string, logger *zap.Logger) (*FileStore, error) {
	usersDir := filepath.Join(dataDir, "users")
	if err := os.MkdirAll(usersDir, 0o755); err != nil {
		return nil, fmt.Errorf("create users dir: %w", err)
	}
	return &FileStore{
		usersDir: usersDir,
		logger:   logger,
		dirs:     make(map[string]string),
	}, nil
}

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
var spaces = regexp.MustCompile(`\s+`)

// slugify normaliza el nombre para usarlo como carpeta.
func slugify(name string) string {
	s := nonAlnum.ReplaceAllString(strings.TrimSpace(name), "")
	s = spaces.ReplaceAllString(s, "_")
	s = strings.ToLower(s)
	if s == "" {
		s = "user"
	}
	return s
}

// Create genera un user_id nuevo, arma la carpeta y persiste el perfil inicial.
func (s *FileStore) Create(name string) (*domain.UserProfile, error) {
	profile := domain.NewUserProfile(newUserID(), name)

	s.mu.Lock()
	defer s.mu.Unlock()

	dirName := fmt.Sprintf("%s_%s", slugify(name), profile.UserID[:8])
	userDir := filepath.Join(s.usersDir, dirName)
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		return nil, fmt.Errorf("create user dir: %w", err)
	}

	s.dirs[profile.UserID] = userDir
	if err := s.writeProfileLocked(userDir, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Load busca el perfil por user_id. Normaliza perfiles de esquemas viejos
// (claves de dimension faltantes, listas nil) al cargar.
func (s *FileStore) Load(userID string) (*domain.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userDir, err := s.findUserDirLocked(userID)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(filepath.Join(userDir, "profile.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("read profile: %w", err)
	}

	var profile domain.UserProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", userID, err)
	}
	profile.Normalize()
	return &profile, nil
}

// Save persiste el perfil completo. El temporal vive en la misma carpeta
// para que el rename sea atomico dentro del filesystem.
func (s *FileStore) Save(profile *domain.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	userDir, err := s.findUserDirLocked(profile.UserID)
	if err != nil {
		return err
	}
	profile.UpdatedAt = time.Now().UTC()
	return s.writeProfileLocked(userDir, profile)
}

// ListUsers recorre las carpetas de usuarios y devuelve identidad basica.
func (s *FileStore) ListUsers() ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.usersDir)
	if err != nil {
		return nil, fmt.Errorf("read users dir: %w", err)
	}

	var users []domain.User
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.usersDir, e.Name(), "profile.json"))
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping unreadable profile", zap.String("dir", e.Name()), zap.Error(err))
			}
			continue
		}
		var profile domain.UserProfile
		if err := json.Unmarshal(raw, &profile); err != nil {
			if s.logger != nil {
				s.logger.Warn("skipping corrupt profile", zap.String("dir", e.Name()), zap.Error(err))
			}
			continue
		}
		s.dirs[profile.UserID] = filepath.Join(s.usersDir, e.Name())
		users = append(users, domain.User{
			ID:        profile.UserID,
			Name:      profile.Name,
			CreatedAt: profile.CreatedAt,
		})
	}
	return users, nil
}

func (s *FileStore) writeProfileLocked(userDir string, profile *domain.UserProfile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	tmp, err := os.CreateTemp(userDir, "profile-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp profile: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(userDir, "profile.json")); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}

// findUserDirLocked resuelve la carpeta del usuario, primero por cache y
// luego escaneando por sufijo <uuid8>.
func (s *FileStore) findUserDirLocked(userID string) (string, error) {
	if dir, ok := s.dirs[userID]; ok {
		return dir, nil
	}
	if len(userID) < 8 {
		return "", ErrProfileNotFound
	}

	entries, err := os.ReadDir(s.usersDir)
	if err != nil {
		return "", fmt.Errorf("read users dir: %w", err)
	}
	suffix := "_" + userID[:8]
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			dir := filepath.Join(s.usersDir, e.Name())
			s.dirs[userID] = dir
			return dir, nil
		}
	}
	return "", ErrProfileNotFound
}
