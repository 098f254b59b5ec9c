// Command createadmin creates (or resets the password of) an administrator
// account, for first-run setup before the web UI is reachable.
package main

import (
	"log"
	"os"

	"github.com/donatinator/donatinator/app/models"
	"github.com/donatinator/donatinator/app/repository"
	"github.com/donatinator/donatinator/internal/pkg/database"
	"github.com/donatinator/donatinator/internal/pkg/env"
)

func main() {
	if len(os.Args) < 4 {
		log.Fatalf("Usage: go run cmd/createadmin/main.go <email> <title> <password>")
	}
	email, title, password := os.Args[1], os.Args[2], os.Args[3]

	env.SetupEnvFile()
	database.SetupDatabase()
	repository.InitializeFactory(database.GetDB())

	repos := repository.GetGlobalRepositories()
	existing, err := repos.Account.GetByEmail(email)
	if err != nil {
		log.Fatalf("Error looking up account: %v", err)
	}

	if existing != nil {
		hash, err := models.HashPassword(password)
		if err != nil {
			log.Fatalf("Error hashing password: %v", err)
		}
		existing.Title = title
		existing.Password = &hash
		if err := repos.Account.Update(existing); err != nil {
			log.Fatalf("Error updating account: %v", err)
		}
		log.Printf("Updated administrator account %s", email)
		return
	}

	account, err := models.NewAdminAccount(email, title, password)
	if err != nil {
		log.Fatalf("Error building account: %v", err)
	}
	if err := repos.Account.Create(account); err != nil {
		log.Fatalf("Error creating account: %v", err)
	}
	log.Printf("Created administrator account %s", email)
}
