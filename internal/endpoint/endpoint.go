// Package endpoint turns a hosted project URL into a database connection target.
package endpoint

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/VladPetriv/fathom_migrator/config"
	"github.com/VladPetriv/fathom_migrator/pkg/database"
	"github.com/VladPetriv/fathom_migrator/pkg/errs"
)

const expectedScheme = "https"

var projectRefPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// Errors returned for references that do not look like https://<project-id>.<domain>.
var (
	ErrEmptyReference   = errors.New("endpoint reference is empty")
	ErrInvalidScheme    = errors.New("endpoint reference must use https")
	ErrUnexpectedDomain = errors.New("endpoint reference has unexpected domain")
	ErrUnexpectedParts  = errors.New("endpoint reference must not carry credentials, port, path, query or fragment")
	ErrInvalidProjectID = errors.New("endpoint reference has invalid project identifier")
)

// ProjectRef derives the project identifier from a reference of the form
// https://<project-id>.<hostingDomain>.
func ProjectRef(reference, hostingDomain string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", errs.Wrap(errs.ErrConfiguration, ErrEmptyReference)
	}

	u, err := url.Parse(reference)
	if err != nil {
		return "", errs.Wrap(errs.ErrConfiguration, fmt.Errorf("parse endpoint reference: %w", err))
	}

	if u.Scheme != expectedScheme {
		return "", errs.Wrap(errs.ErrConfiguration, fmt.Errorf("%w: got %q", ErrInvalidScheme, u.Scheme))
	}
	if u.User != nil || u.Port() != "" || (u.Path != "" && u.Path != "/") ||
		u.RawQuery != "" || u.Fragment != "" || u.Opaque != "" {
		return "", errs.Wrap(errs.ErrConfiguration, ErrUnexpectedParts)
	}

	suffix := "." + strings.ToLower(strings.Trim(hostingDomain, "."))
	host := strings.ToLower(u.Hostname())

	projectID, found := strings.CutSuffix(host, suffix)
	if !found {
		return "", errs.Wrap(errs.ErrConfiguration, fmt.Errorf("%w: %q is not under %q", ErrUnexpectedDomain, host, suffix[1:]))
	}
	if !projectRefPattern.MatchString(projectID) {
		return "", errs.Wrap(errs.ErrConfiguration, fmt.Errorf("%w: %q", ErrInvalidProjectID, projectID))
	}

	return projectID, nil
}

// Target assembles connection options for the project database.
func Target(projectID string, cfg config.PostgreSQL) database.PostgreSQLOptions {
	return database.PostgreSQLOptions{
		User:             cfg.User + "." + projectID,
		Password:         cfg.Password,
		Database:         cfg.Database,
		Host:             cfg.Host,
		Port:             cfg.Port,
		SSLMode:          cfg.SSLMode,
		ConnectTimeout:   cfg.ConnectTimeout,
		StatementTimeout: cfg.StatementTimeout,
	}
}

// Resolve validates the config and returns the connection target with the project identifier.
func Resolve(cfg *config.Config) (database.PostgreSQLOptions, string, error) {
	err := cfg.Validate()
	if err != nil {
		return database.PostgreSQLOptions{}, "", err
	}

	projectID, err := ProjectRef(cfg.Supabase.URL, cfg.Supabase.HostingDomain)
	if err != nil {
		return database.PostgreSQLOptions{}, "", err
	}

	return Target(projectID, cfg.PostgreSQL), projectID, nil
}
