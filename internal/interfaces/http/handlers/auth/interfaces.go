package auth

import (
	"context"

	"github.com/kitlog-inc/kitlog/internal/application/auth/usecases"
)

// Executor interfaces decouple the handler from the concrete usecases so
// tests can substitute mocks.

type RegisterExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) error
}
