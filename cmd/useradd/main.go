// Command useradd creates a staff account that can publish and delete articles.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/harsoyo/notaris-web/app/models"
	"github.com/harsoyo/notaris-web/app/repository"
	"github.com/harsoyo/notaris-web/internal/pkg/database"
	"github.com/harsoyo/notaris-web/internal/pkg/env"
)

func main() {
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "login email")
	password := flag.String("password", "", "plain password, at least 6 characters")
	admin := flag.Bool("admin", false, "grant the admin role")
	flag.Parse()

	env.SetupEnvFile()
	if database.Driver() == database.DriverMemory {
		fmt.Fprintln(os.Stderr, "useradd needs a real database, DB_DRIVER=memory keeps nothing")
		os.Exit(1)
	}
	database.SetupDatabase()

	role := models.ROLE_USER
	if *admin {
		role = models.ROLE_ADMIN
	}

	user, err := models.CreateUser(*name, strings.ToLower(strings.TrimSpace(*email)), *password, role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid user: %v\n", err)
		os.Exit(1)
	}

	users := repository.NewFactory(database.GetDB()).GetUserRepository()
	if err := users.Create(context.Background(), user); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create user: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("created %s user %d <%s>\n", user.Role, user.ID, user.Email)
}
