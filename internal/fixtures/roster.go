package fixtures

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"gopkg.in/yaml.v3"

	"github.com/shiftdesk/shiftdesk-go/internal/domain/user"
	"github.com/shiftdesk/shiftdesk-go/internal/pkg/validator"
)

type rosterFile struct {
	Users []rosterUser `yaml:"users"`
}

type rosterUser struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Role     string `yaml:"role"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// FromRosterFile builds the seed dataset with the user roster replaced by
// the contents of the YAML file at path. The fixture time entries,
// preferences and shifts still reference the default ids; a custom roster
// normally reuses them.
func FromRosterFile(clk clockwork.Clock, path string) (SeedData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return SeedData{}, fmt.Errorf("read roster file: %w", err)
	}

	var rf rosterFile
	if err := yaml.Unmarshal(raw, &rf); err != nil {
		return SeedData{}, fmt.Errorf("parse roster file: %w", err)
	}
	if len(rf.Users) == 0 {
		return SeedData{}, fmt.Errorf("roster file %s defines no users", path)
	}

	roster := make([]seedUser, 0, len(rf.Users))
	for i, ru := range rf.Users {
		role := user.Role(ru.Role)
		if role != user.RoleAdmin && role != user.RoleEmployee {
			return SeedData{}, fmt.Errorf("roster user %d: unknown role %q", i, ru.Role)
		}
		if validator.IsEmpty(ru.ID) || validator.IsEmpty(ru.Password) || !validator.IsValidEmail(ru.Email) {
			return SeedData{}, fmt.Errorf("roster user %d: id, email and password are required", i)
		}
		roster = append(roster, seedUser{
			ID:       ru.ID,
			Name:     ru.Name,
			Role:     role,
			Email:    ru.Email,
			Password: ru.Password,
		})
	}

	users, err := buildUsers(roster)
	if err != nil {
		return SeedData{}, err
	}
	return buildData(clk, users), nil
}
