// testenv.go
//
// eCTD submission registry: applications, submission units and their Context of Use logs
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of ectd-registry.
// ectd-registry is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// ectd-registry is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with ectd-registry.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package testenv starts the containers the integration tests and the
// standalone testcontainers command run against. Settings come from the
// environment, usually loaded from a .env file:
//
//	DB_IMAGE, DB_TYPE, DB_HOST, DB_PORT, DB_ROOT_PASSWORD,
//	DB_APP_DATABASE, DB_APP_USER, DB_APP_PASSWORD, PORT
package testenv

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/ectd-registry/data"
	"github.com/localnerve/ectd-registry/internal/config"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const serviceImage = "ectd-registry-test:latest"

// Containers tracks everything started so Terminate can tear it down
type Containers struct {
	Network                 *testcontainers.DockerNetwork
	DBContainer             testcontainers.Container
	ServiceBuilderContainer testcontainers.Container
	ServiceContainer        testcontainers.Container

	// DBHost and DBPort reach the database from the host
	DBHost string
	DBPort nat.Port
	// BaseURL reaches the service from the host, when it was started
	BaseURL string
}

// Enabled reports whether a database image is configured
func Enabled() bool {
	return os.Getenv("DB_IMAGE") != ""
}

// Terminate stops the containers in reverse start order
func (tc *Containers) Terminate(t testing.TB) {
	ctx := context.Background()
	if tc.ServiceContainer != nil {
		if err := tc.ServiceContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate service: %v", err)
		}
	}
	if tc.ServiceBuilderContainer != nil {
		if err := tc.ServiceBuilderContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate service builder: %v", err)
		}
	}
	if tc.DBContainer != nil {
		if err := tc.DBContainer.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate database: %v", err)
		}
	}
	if tc.Network != nil {
		if err := tc.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// Config returns a service configuration pointing at the database container
// through its host mapped port
func (tc *Containers) Config() *config.Config {
	return &config.Config{
		Port:                 os.Getenv("PORT"),
		CORSAllowOrigins:     "*",
		DBType:               os.Getenv("DB_TYPE"),
		DBHost:               tc.DBHost,
		DBPort:               tc.DBPort.Port(),
		DBAppDatabase:        os.Getenv("DB_APP_DATABASE"),
		DBAppUser:            os.Getenv("DB_APP_USER"),
		DBAppPassword:        os.Getenv("DB_APP_PASSWORD"),
		DBAppConnectionLimit: 5,
		DBLogLevel:           "warn",
		CouMaxRetries:        5,
		SequenceMaxRetries:   3,
	}
}

// StartDatabase starts and bootstraps the database container on a new network
func StartDatabase(t testing.TB) (*Containers, error) {
	ctx := context.Background()
	tc := &Containers{}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	tc.Network = nw

	dbType := os.Getenv("DB_TYPE")
	tcpDBPort, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to create DB port: %w", err)
	}

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("DB_IMAGE"),
			ExposedPorts: []string{string(tcpDBPort)},
			Env:          dbInitEnv(dbType),
			WaitingFor:   wait.ForListeningPort(tcpDBPort).WithStartupTimeout(60 * time.Second),
			Networks:     []string{nw.Name},
			NetworkAliases: map[string][]string{
				nw.Name: {os.Getenv("DB_HOST")},
			},
		},
		Started: true,
	})
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to start database: %w", err)
	}
	tc.DBContainer = dbContainer

	tc.DBHost, _ = dbContainer.Host(ctx)
	tc.DBPort, _ = dbContainer.MappedPort(ctx, tcpDBPort)

	switch dbType {
	case "mysql", "mariadb":
		if err := initMariaDB(tc.DBHost, tc.DBPort); err != nil {
			tc.Terminate(t)
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	logMessage(t, "DB_HOST=%s DB_PORT=%s", tc.DBHost, tc.DBPort.Port())
	return tc, nil
}

// StartAll starts the database and the service image, building the image
// from the Dockerfile when it does not exist yet
func StartAll(t testing.TB) (*Containers, error) {
	ctx := context.Background()

	tc, err := StartDatabase(t)
	if err != nil {
		return nil, err
	}

	exists, err := imageExists(ctx, serviceImage)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to check if image exists: %w", err)
	}

	port := os.Getenv("PORT")
	tcpPort, err := nat.NewPort("tcp", port)
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to create service port: %w", err)
	}

	request := testcontainers.ContainerRequest{
		ExposedPorts: []string{string(tcpPort)},
		Env: map[string]string{
			"DB_TYPE":                 os.Getenv("DB_TYPE"),
			"DB_HOST":                 os.Getenv("DB_HOST"),
			"DB_PORT":                 os.Getenv("DB_PORT"),
			"DB_APP_DATABASE":         os.Getenv("DB_APP_DATABASE"),
			"DB_APP_USER":             os.Getenv("DB_APP_USER"),
			"DB_APP_PASSWORD":         os.Getenv("DB_APP_PASSWORD"),
			"DB_APP_CONNECTION_LIMIT": os.Getenv("DB_APP_CONNECTION_LIMIT"),
			"PORT":                    port,
		},
		WaitingFor: wait.ForHTTP("/api/health").WithPort(tcpPort).WithStartupTimeout(30 * time.Second),
		Networks:   []string{tc.Network.Name},
	}

	if !exists {
		sessionID := uuid.New().String()
		buildArgs := map[string]*string{
			"RESOURCE_REAPER_SESSION_ID": &sessionID,
		}

		buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
		if buildContext == "" {
			buildContext = "../.."
		}

		logMessage(t, "Image %s does not exist, building...", serviceImage)
		builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				FromDockerfile: testcontainers.FromDockerfile{
					Context:    buildContext,
					Dockerfile: "Dockerfile",
					Repo:       "ectd-registry-test-builder",
					Tag:        "latest",
					BuildArgs:  buildArgs,
					BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
						opts.Target = "builder"
					},
					PrintBuildLog: true,
				},
			},
			Started: false,
		})
		if err != nil {
			tc.Terminate(t)
			return nil, fmt.Errorf("failed to build service builder: %w", err)
		}
		tc.ServiceBuilderContainer = builder

		repo, tag, _ := strings.Cut(serviceImage, ":")
		request.FromDockerfile = testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       repo,
			Tag:        tag,
			KeepImage:  true,
			BuildArgs:  buildArgs,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = "runtime"
			},
			PrintBuildLog: true,
		}
	} else {
		logMessage(t, "Image %s exists, reusing...", serviceImage)
		request.Image = serviceImage
	}

	service, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		tc.Terminate(t)
		return nil, fmt.Errorf("failed to start service: %w", err)
	}
	tc.ServiceContainer = service

	host, _ := service.Host(ctx)
	mapped, _ := service.MappedPort(ctx, tcpPort)
	tc.BaseURL = "http://" + net.JoinHostPort(host, mapped.Port())
	logMessage(t, "BASE_URL=%s", tc.BaseURL)

	return tc, nil
}

func dbInitEnv(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_PASSWORD": os.Getenv("DB_APP_PASSWORD"),
			"POSTGRES_USER":     os.Getenv("DB_APP_USER"),
			"POSTGRES_DB":       os.Getenv("DB_APP_DATABASE"),
		}
	case "mariadb", "mysql":
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
			"MYSQL_DATABASE":      os.Getenv("DB_APP_DATABASE"),
			"MYSQL_USER":          os.Getenv("DB_APP_USER"),
			"MYSQL_PASSWORD":      os.Getenv("DB_APP_PASSWORD"),
		}
	}
	return nil
}

// initMariaDB creates the application database, its tables and the service
// account grants as root.
func initMariaDB(host string, port nat.Port) error {
	database := os.Getenv("DB_APP_DATABASE")
	user := os.Getenv("DB_APP_USER")

	dsn := mysqldriver.NewConfig()
	dsn.User = "root"
	dsn.Passwd = os.Getenv("DB_ROOT_PASSWORD")
	dsn.Net = "tcp"
	dsn.Addr = net.JoinHostPort(host, port.Port())

	root, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to connect for setup: %w", err)
	}
	defer root.Close()

	// Wait for connection to be really ready
	for i := 0; i < 30; i++ {
		if err = root.Ping(); err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		return fmt.Errorf("database not ready after 30 seconds: %w", err)
	}

	if _, err := root.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database)); err != nil {
		return fmt.Errorf("failed to create %s: %w", database, err)
	}
	if _, err := root.Exec(fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", user, os.Getenv("DB_APP_PASSWORD"))); err != nil {
		return fmt.Errorf("failed to create user %s: %w", user, err)
	}

	dsn.DBName = database
	appDB, err := sql.Open("mysql", dsn.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", database, err)
	}
	defer appDB.Close()

	if err := executeSQL(appDB, data.InitdbMariaDBTables); err != nil {
		return fmt.Errorf("failed to execute tables init sql: %w", err)
	}
	if err := executeSQL(appDB, data.MariaDBPrivileges(database, user)); err != nil {
		return fmt.Errorf("failed to execute privileges init sql: %w", err)
	}
	return nil
}

// executeSQL runs a script statement by statement. Statements end with ";"
// and "--" starts a comment outside quotes.
func executeSQL(db *sql.DB, script string) error {
	lines := strings.Split(script, "\n")

	stripped := make([]string, 0, len(lines))
	for _, l := range lines {
		stripped = append(stripped, excludeComment(l))
	}

	for _, q := range strings.Split(strings.Join(stripped, "\n"), ";") {
		if strings.TrimSpace(q) == "" {
			continue
		}
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("%s : when executing > %s", err.Error(), q)
		}
	}
	return nil
}

// excludeComment drops a trailing "--" comment that is not inside quotes.
func excludeComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case strings.HasPrefix(line[i:], "--"):
			return line[:i]
		}
	}
	return line
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}

	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}

	return false, nil
}

func logMessage(t testing.TB, format string, args ...any) {
	if t != nil {
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
