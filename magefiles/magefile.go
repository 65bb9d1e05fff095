//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary   = "bin/mfl"
	templDir = "./internal/api"
)

// Generate runs templ generate over the calculator page components.
// Run it whenever a .templ file changes.
func Generate() error {
	if _, err := exec.LookPath("templ"); err != nil {
		fmt.Println(">> templ not found; install with:")
		fmt.Println("   go install github.com/a-h/templ/cmd/templ@v0.3.1001")
		return err
	}
	fmt.Println(">> templ generate", templDir)
	return sh.Run("templ", "generate", "-path", templDir)
}

// Build generates templ output, tidies deps, then compiles the CLI to ./bin/mfl.
func Build() error {
	mg.Deps(Generate, Tidy)
	fmt.Println(">> Building", binary)
	return sh.Run("go", "build", "-o", binary, "./cmd/mfl")
}

// Test runs all unit and integration tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	fmt.Println(">> go vet...")
	return sh.RunV("go", "vet", "./...")
}

// Run builds then starts the server with settings from .env.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server...")
	return sh.RunV(binary, "serve")
}

// Example writes example_config.yaml and renders every report for it into ./reports.
func Example() error {
	mg.Deps(Build)
	if err := sh.RunV(binary, "example", "--force"); err != nil {
		return err
	}
	return sh.RunV(binary, "run", "--config", "example_config.yaml", "--format", "all", "--out", "reports")
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Clean removes build artifacts, generated reports, and the local SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	os.RemoveAll("bin")
	os.RemoveAll("reports")
	db := os.Getenv("DB_PATH")
	if db == "" {
		db = "money-for-life.db"
	}
	return os.RemoveAll(db)
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
