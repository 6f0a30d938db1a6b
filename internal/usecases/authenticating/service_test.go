package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/production-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/production-report-api/internal/config"
	"github.com/vfg2006/production-report-api/internal/domain"
	"github.com/vfg2006/production-report-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "segredo-de-teste"

func stringPtr(s string) *string {
	return &s
}

func newTestService(t *testing.T) (*Service, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(mockUserRepo, &config.Config{SecretKey: testSecret}).(*Service)
	return service, mockUserRepo
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func assertAuthCode(t *testing.T, err error, code string) {
	t.Helper()

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, code, authErr.Code)
}

func TestService_LoginUser(t *testing.T) {
	activeUser := func() *domain.User {
		return &domain.User{
			ID:           7,
			Name:         "Carla",
			Lastname:     "Mendes",
			Email:        "carla@clinica.com",
			PasswordHash: hashPassword(t, "Senha@123"),
			Active:       true,
			RoleID:       domain.RolePractitioner,
		}
	}

	tests := []struct {
		name         string
		email        string
		password     string
		setup        func(repo *mocks.MockUserRepository)
		expectedCode string
	}{
		{
			name:         "Campos vazios",
			email:        "",
			password:     "",
			setup:        func(repo *mocks.MockUserRepository) {},
			expectedCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@clinica.com",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ninguem@clinica.com").Return(nil, nil)
			},
			expectedCode: apiErrors.ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "carla@clinica.com",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				user := activeUser()
				user.Active = false
				repo.EXPECT().GetUserByEmail("carla@clinica.com").Return(user, nil)
			},
			expectedCode: apiErrors.ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "carla@clinica.com",
			password: "errada",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("carla@clinica.com").Return(activeUser(), nil)
			},
			expectedCode: apiErrors.ErrInvalidCredentials,
		},
		{
			name:     "Erro no banco",
			email:    "carla@clinica.com",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("carla@clinica.com").Return(nil, errors.New("timeout"))
			},
			expectedCode: apiErrors.ErrDatabaseOperation,
		},
		{
			name:     "Email normalizado e login com sucesso",
			email:    " Carla@Clinica.com ",
			password: "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("carla@clinica.com").Return(activeUser(), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			token, err := service.LoginUser(tt.email, tt.password)
			if tt.expectedCode != "" {
				assertAuthCode(t, err, tt.expectedCode)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			claims, err := service.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, 7, claims.UserID)
			assert.Equal(t, domain.ReportOwner{ID: 7, Name: "Carla Mendes"}, claims.Owner())
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	service, _ := newTestService(t)

	t.Run("Token expirado", func(t *testing.T) {
		claims := domain.Claims{
			UserID: 7,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assertAuthCode(t, err, apiErrors.ErrExpiredToken)
	})

	t.Run("Assinatura com outro segredo", func(t *testing.T) {
		token, err := generateJWT(&domain.User{ID: 7}, "outro-segredo")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		assertAuthCode(t, err, apiErrors.ErrInvalidToken)
	})

	t.Run("Token malformado", func(t *testing.T) {
		_, err := service.ValidateToken("abc.def")
		assertAuthCode(t, err, apiErrors.ErrInvalidToken)
	})
}

func TestService_CreateUser(t *testing.T) {
	t.Run("Perfil padrão é profissional e usuário começa inativo", func(t *testing.T) {
		service, repo := newTestService(t)

		repo.EXPECT().GetUserByEmail("carla@clinica.com").Return(nil, nil)
		repo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RolePractitioner, user.RoleID)
			assert.False(t, user.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@123")))
			user.ID = 10
			return user, nil
		})

		user, err := service.CreateUser(&domain.User{Name: "Carla", Lastname: "Mendes", Email: "Carla@Clinica.com", PasswordHash: "Senha@123"})
		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByEmail("carla@clinica.com").Return(&domain.User{ID: 1}, nil)

		_, err := service.CreateUser(&domain.User{Name: "Carla", Lastname: "Mendes", Email: "carla@clinica.com", PasswordHash: "Senha@123"})
		assertAuthCode(t, err, apiErrors.ErrUserAlreadyExists)
	})

	t.Run("Campos obrigatórios", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Email: "carla@clinica.com"})
		assertAuthCode(t, err, apiErrors.ErrMissingRequiredData)
	})
}

func TestService_SetReportEmail(t *testing.T) {
	tests := []struct {
		name         string
		email        string
		setup        func(repo *mocks.MockUserRepository)
		expectedCode string
		expected     *string
	}{
		{
			name:         "Email inválido não consulta o banco",
			email:        "carla@",
			setup:        func(repo *mocks.MockUserRepository) {},
			expectedCode: apiErrors.ErrInvalidFormat,
		},
		{
			name:  "Cadastra email normalizado",
			email: " Relatorios@Clinica.com ",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: "hash"}, nil)
				repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
					assert.Equal(t, "relatorios@clinica.com", *user.ReportEmail)
					return nil
				})
			},
			expected: stringPtr("relatorios@clinica.com"),
		},
		{
			name:  "Email vazio remove a assinatura",
			email: "",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, ReportEmail: stringPtr("antigo@clinica.com")}, nil)
				repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
					require.NotNil(t, user.ReportEmail)
					assert.Equal(t, "", *user.ReportEmail)
					return nil
				})
			},
			expected: nil,
		},
		{
			name:  "Usuário inexistente",
			email: "relatorios@clinica.com",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(nil, nil)
			},
			expectedCode: apiErrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			user, err := service.SetReportEmail(7, tt.email)
			if tt.expectedCode != "" {
				assertAuthCode(t, err, tt.expectedCode)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, user.ReportEmail)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		password string
		valid    bool
	}{
		{"Senha@123", true},
		{"curta", false},
		{"semmaiuscula@1", false},
		{"SEMMINUSCULA@1", false},
		{"SemNumero@", false},
		{"SemEspecial1", false},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestGenerateStrongPassword(t *testing.T) {
	service, _ := newTestService(t)

	password, err := generateStrongPassword(12)
	require.NoError(t, err)
	assert.Len(t, password, 12)
	assert.NoError(t, service.ValidatePasswordStrength(password))
}

func TestService_ChangePassword(t *testing.T) {
	tests := []struct {
		name         string
		current      string
		next         string
		setup        func(repo *mocks.MockUserRepository)
		expectedCode string
		expectedErr  error
	}{
		{
			name:    "Troca a senha",
			current: "Senha@123",
			next:    "NovaSenha#45",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "Senha@123")}, nil)
				repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("NovaSenha#45")))
					return nil
				})
			},
		},
		{
			name:    "Senha atual incorreta",
			current: "Errada@123",
			next:    "NovaSenha#45",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "Senha@123")}, nil)
			},
			expectedCode: apiErrors.ErrInvalidCredentials,
			expectedErr:  ErrInvalidCredentials,
		},
		{
			name:    "Nova senha igual à atual",
			current: "Senha@123",
			next:    "Senha@123",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "Senha@123")}, nil)
			},
			expectedCode: apiErrors.ErrInvalidFormat,
			expectedErr:  ErrSamePassword,
		},
		{
			name:    "Nova senha fraca",
			current: "Senha@123",
			next:    "fraca",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, PasswordHash: hashPassword(t, "Senha@123")}, nil)
			},
			expectedCode: apiErrors.ErrInvalidFormat,
			expectedErr:  ErrWeakPassword,
		},
		{
			name:    "Usuário inexistente",
			current: "Senha@123",
			next:    "NovaSenha#45",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(7).Return(nil, nil)
			},
			expectedCode: apiErrors.ErrUserNotFound,
			expectedErr:  ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t)
			tt.setup(repo)

			err := service.ChangePassword(7, tt.current, tt.next)
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				return
			}

			assertAuthCode(t, err, tt.expectedCode)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_GenerateStrongPassword(t *testing.T) {
	t.Run("Apenas administradores", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(7).Return(&domain.User{ID: 7, RoleID: domain.RolePractitioner}, nil)

		_, err := service.GenerateStrongPassword(7, 8)
		assertAuthCode(t, err, apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Usuário alvo inexistente", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		repo.EXPECT().GetUserByID(8).Return(nil, nil)

		_, err := service.GenerateStrongPassword(1, 8)
		assertAuthCode(t, err, apiErrors.ErrUserNotFound)
	})

	t.Run("Grava a nova senha do alvo", func(t *testing.T) {
		service, repo := newTestService(t)
		repo.EXPECT().GetUserByID(1).Return(&domain.User{ID: 1, RoleID: domain.RoleAdmin}, nil)
		repo.EXPECT().GetUserByID(8).Return(&domain.User{ID: 8, RoleID: domain.RolePractitioner}, nil)

		var stored string
		repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
			stored = user.PasswordHash
			return nil
		})

		password, err := service.GenerateStrongPassword(1, 8)
		require.NoError(t, err)
		assert.Len(t, password, generatedPasswordLength)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)))
	})
}
