package tests

import (
	"os"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// LocalTestFixture brings up the docker-compose infrastructure the API
// tests run against. Set SKIP_INFRASTRUCTURE=true to reuse an already
// running stack.
type LocalTestFixture struct {
	compose testcontainers.DockerCompose
}

func NewLocalTestFixture(dockerComposePath string) (LocalTestFixture, error) {
	compose := testcontainers.NewLocalDockerCompose(
		[]string{dockerComposePath},
		uuid.NewString(),
	)

	compose.WithExposedService("postgres", 5432, wait.ForListeningPort(nat.Port("5432/tcp")))

	return LocalTestFixture{
		compose: compose.WithCommand([]string{"up", "-d"}),
	}, nil
}

func (f *LocalTestFixture) Start() error {
	if skip := os.Getenv("SKIP_INFRASTRUCTURE"); skip == "true" {
		return nil
	}

	return f.compose.Invoke().Error
}

func (f *LocalTestFixture) Stop() error {
	if skip := os.Getenv("SKIP_INFRASTRUCTURE"); skip == "true" {
		return nil
	}

	return f.compose.Down().Error
}
