// Command portal-cli is an interactive terminal client for the student
// portal. It keeps all state in memory for the life of the process.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/temitayo1239/student-information-portal-main/internal/config"
	"github.com/temitayo1239/student-information-portal-main/internal/database"
	"github.com/temitayo1239/student-information-portal-main/internal/logger"
	"github.com/temitayo1239/student-information-portal-main/internal/repository"
	"golang.org/x/term"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	var catalog repository.Catalog = repository.NewFixtureCatalog()
	if cfg.CatalogSource == config.CatalogSourcePostgres {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			cancel()
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		loaded, err := repository.NewCatalogRepository(pool).Load(ctx)
		pool.Close()
		cancel()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load catalog")
		}
		catalog = loaded
	}

	reader := bufio.NewReader(os.Stdin)
	sh := newShell(catalog, os.Stdout)

	fmt.Println("=== Student Portal ===")
	for {
		matric, password, err := prompt(reader)
		if err != nil {
			return
		}
		if !sh.login(matric, password) {
			fmt.Println("Matric number and password are required.")
			continue
		}
		if repl(reader, sh) == quit {
			return
		}
	}
}

func prompt(reader *bufio.Reader) (string, string, error) {
	fmt.Print("Matric number: ")
	matric, err := reader.ReadString('\n')
	if err != nil {
		return "", "", err
	}

	fmt.Print("Password: ")
	fd := int(os.Stdin.Fd())
	var password string
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println() // Newline after password input
		if err != nil {
			return "", "", err
		}
		password = string(b)
	} else {
		password, err = reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", "", err
		}
	}
	return strings.TrimSpace(matric), strings.TrimSpace(password), nil
}

func repl(reader *bufio.Reader, sh *shell) outcome {
	for {
		fmt.Print("portal> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return quit
		}
		if res := sh.exec(line); res != stay {
			return res
		}
	}
}
