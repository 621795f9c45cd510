// Package fixtures loads the static seed data the application starts from.
package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/SscSPs/community_connect/internal/core/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Data is the full initial state of the store.
type Data struct {
	Members             []domain.Member      `yaml:"members"`
	Projects            []domain.Project     `yaml:"projects"`
	BankAccounts        []domain.BankAccount `yaml:"bankAccounts"`
	Transactions        []domain.Transaction `yaml:"transactions"`
	ChatMessages        []domain.ChatMessage `yaml:"chatMessages"`
	Settings            domain.Settings      `yaml:"settings"`
	MembershipFeeAmount decimal.Decimal      `yaml:"membershipFeeAmount"`
	PixKey              string               `yaml:"pixKey"`
}

// Default parses the embedded seed file.
func Default() (Data, error) {
	return Parse(seedYAML)
}

// Parse decodes seed data from raw YAML and checks id uniqueness per collection.
func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("failed to decode seed data: %w", err)
	}
	if err := d.validate(); err != nil {
		return Data{}, err
	}
	for i := range d.Projects {
		if d.Projects[i].Files == nil {
			d.Projects[i].Files = []string{}
		}
	}
	return d, nil
}

func (d Data) validate() error {
	checks := []struct {
		collection string
		ids        []int
	}{
		{"members", idsOf(d.Members, func(m domain.Member) int { return m.ID })},
		{"projects", idsOf(d.Projects, func(p domain.Project) int { return p.ID })},
		{"bankAccounts", idsOf(d.BankAccounts, func(a domain.BankAccount) int { return a.ID })},
		{"transactions", idsOf(d.Transactions, func(t domain.Transaction) int { return t.ID })},
		{"chatMessages", idsOf(d.ChatMessages, func(c domain.ChatMessage) int { return c.ID })},
	}
	for _, c := range checks {
		seen := make(map[int]struct{}, len(c.ids))
		for _, id := range c.ids {
			if id <= 0 {
				return fmt.Errorf("seed %s: id must be positive, got %d", c.collection, id)
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("seed %s: duplicate id %d", c.collection, id)
			}
			seen[id] = struct{}{}
		}
	}
	for _, m := range d.Members {
		if !m.Role.Valid() {
			return fmt.Errorf("seed members: member %d has unknown role %q", m.ID, m.Role)
		}
	}
	if d.MembershipFeeAmount.IsNegative() {
		return fmt.Errorf("seed membershipFeeAmount must not be negative")
	}
	return nil
}

func idsOf[T any](items []T, id func(T) int) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = id(it)
	}
	return out
}
