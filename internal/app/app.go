// Package app assembles repositories, use cases and HTTP handlers into the
// API router.
package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpAdapter "github.com/khoahotran/devconnector/adapters/http"
	"github.com/khoahotran/devconnector/adapters/persistence"
	"github.com/khoahotran/devconnector/adapters/persistence/memory"
	"github.com/khoahotran/devconnector/internal/application/service"
	accountUC "github.com/khoahotran/devconnector/internal/application/usecase/account"
	authUC "github.com/khoahotran/devconnector/internal/application/usecase/auth"
	postUC "github.com/khoahotran/devconnector/internal/application/usecase/post"
	profileUC "github.com/khoahotran/devconnector/internal/application/usecase/profile"
	"github.com/khoahotran/devconnector/internal/config"
	"github.com/khoahotran/devconnector/internal/domain/account"
	"github.com/khoahotran/devconnector/internal/domain/post"
	"github.com/khoahotran/devconnector/internal/domain/profile"
	"github.com/khoahotran/devconnector/internal/domain/user"
	"github.com/khoahotran/devconnector/pkg/auth"
	"github.com/khoahotran/devconnector/pkg/logger"
)

type Repositories struct {
	Users    user.Repository
	Profiles profile.Repository
	Posts    post.Repository
	Accounts account.Remover
}

func NewMemoryRepositories() Repositories {
	store := memory.NewStore()
	return Repositories{
		Users:    store.Users(),
		Profiles: store.Profiles(),
		Posts:    store.Posts(),
		Accounts: store.Accounts(),
	}
}

func NewPostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    persistence.NewPostgresUserRepo(pool),
		Profiles: persistence.NewPostgresProfileRepo(pool),
		Posts:    persistence.NewPostgresPostRepo(pool),
		Accounts: persistence.NewPostgresAccountRepo(pool),
	}
}

func NewRouter(cfg config.Config, repos Repositories, publisher service.EventPublisher, log logger.Logger) *gin.Engine {
	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(repos.Users, jwtSvc, log)
	loginUseCase := authUC.NewLoginUseCase(repos.Users, jwtSvc, log)
	currentUserUseCase := authUC.NewCurrentUserUseCase(repos.Users, log)
	profileUseCase := profileUC.NewProfileUseCase(repos.Profiles, repos.Users, log)
	deleteAccountUseCase := accountUC.NewDeleteAccountUseCase(repos.Accounts, publisher, log)
	createPostUseCase := postUC.NewCreatePostUseCase(repos.Posts, repos.Users, publisher, log)
	listPostsUseCase := postUC.NewListPostsUseCase(repos.Posts, log)
	getPostUseCase := postUC.NewGetPostUseCase(repos.Posts, log)
	deletePostUseCase := postUC.NewDeletePostUseCase(repos.Posts, publisher, log)
	likePostUseCase := postUC.NewLikePostUseCase(repos.Posts, log)
	commentUseCase := postUC.NewCommentUseCase(repos.Posts, repos.Users, log)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		User:    httpAdapter.NewUserHandler(registerUseCase, log),
		Auth:    httpAdapter.NewAuthHandler(loginUseCase, currentUserUseCase, log),
		Profile: httpAdapter.NewProfileHandler(profileUseCase, deleteAccountUseCase, log),
		Post: httpAdapter.NewPostHandler(
			createPostUseCase,
			listPostsUseCase,
			getPostUseCase,
			deletePostUseCase,
			likePostUseCase,
			commentUseCase,
			log,
		),
	}

	return httpAdapter.NewRouter(handlers, jwtSvc, cfg.Auth.Header, log)
}
