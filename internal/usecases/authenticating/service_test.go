package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	repomocks "github.com/vfg2006/solar-pipeline-api/infrastructure/repository/mocks"
	"github.com/vfg2006/solar-pipeline-api/internal/config"
	"github.com/vfg2006/solar-pipeline-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "chave-de-teste"}
}

func activeUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return &domain.User{
		ID:           7,
		TenantID:     "t1",
		Name:         "Ana",
		Lastname:     "Souza",
		Email:        "ana@solar.com",
		PasswordHash: string(hash),
		Active:       true,
		RoleID:       2,
	}
}

func TestLoginUser(t *testing.T) {
	t.Run("Credenciais válidas retornam token verificável", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		user := activeUser(t, "senha123")
		mockUserRepo.EXPECT().GetUserByEmail("ana@solar.com").Return(user, nil)

		service := NewService(mockUserRepo, testConfig())

		token, err := service.LoginUser("Ana@Solar.com ", "senha123")

		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 7, claims.UserID)
		assert.Equal(t, "t1", claims.UserTenantID)
		assert.Equal(t, 2, claims.UserRoleID)
	})

	t.Run("Senha incorreta retorna erro de credenciais com o usuário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("ana@solar.com").Return(activeUser(t, "senha123"), nil)

		service := NewService(mockUserRepo, testConfig())

		token, err := service.LoginUser("ana@solar.com", "senha-errada")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		var authErr *AuthError
		assert.ErrorAs(t, err, &authErr)
		assert.Equal(t, 7, authErr.UserID)
	})

	t.Run("Conta desativada não autentica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		user := activeUser(t, "senha123")
		user.Active = false

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("ana@solar.com").Return(user, nil)

		service := NewService(mockUserRepo, testConfig())

		_, err := service.LoginUser("ana@solar.com", "senha123")

		assert.ErrorIs(t, err, ErrUserDisabled)
	})

	t.Run("Usuário inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("nao@existe.com").Return(nil, nil)

		service := NewService(mockUserRepo, testConfig())

		_, err := service.LoginUser("nao@existe.com", "senha123")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Email ou senha em branco", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		service := NewService(mockUserRepo, testConfig())

		_, err := service.LoginUser("", "senha123")
		assert.ErrorIs(t, err, ErrMissingRequiredData)

		_, err = service.LoginUser("ana@solar.com", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestCreateUser(t *testing.T) {
	t.Run("Novo usuário nasce inativo com papel padrão e senha cifrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("ana@solar.com").Return(nil, nil)

		var persisted *domain.User
		mockUserRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(
			func(u *domain.User) (*domain.User, error) {
				persisted = u
				return u, nil
			})

		service := NewService(mockUserRepo, testConfig())

		user, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        " Ana@Solar.com",
			PasswordHash: "senha123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "ana@solar.com", persisted.Email)
		assert.Equal(t, 3, persisted.RoleID)
		assert.False(t, persisted.Active)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("ana@solar.com").Return(&domain.User{ID: 7}, nil)

		service := NewService(mockUserRepo, testConfig())

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@solar.com",
			PasswordHash: "senha123",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Campos obrigatórios ausentes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)

		service := NewService(mockUserRepo, testConfig())

		_, err := service.CreateUser(&domain.User{Name: "Ana", Email: "ana@solar.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Erro do banco na criação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockUserRepo := repomocks.NewMockUserRepository(ctrl)
		mockUserRepo.EXPECT().GetUserByEmail("ana@solar.com").Return(nil, nil)
		mockUserRepo.EXPECT().CreateUser(gomock.Any()).Return(nil, errors.New("conexão recusada"))

		service := NewService(mockUserRepo, testConfig())

		_, err := service.CreateUser(&domain.User{
			Name:         "Ana",
			Lastname:     "Souza",
			Email:        "ana@solar.com",
			PasswordHash: "senha123",
		})

		assert.Error(t, err)
	})
}
