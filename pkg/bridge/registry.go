package bridge

import (
	"sort"
	"sync"

	"github.com/glasspane/glasspane/pkg/types"
)

// Registry manages registered commands by name
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command. Registering two commands under the same name
// is a wiring bug, so it fails instead of silently replacing the first.
func (r *Registry) Register(c Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.commands[c.Name()]; ok {
		return &types.ErrCommandAlreadyRegistered{Command: c.Name()}
	}
	r.commands[c.Name()] = c
	return nil
}

func (r *Registry) Get(name string) Command {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.commands[name]
}

// List returns registered command names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.commands[name]
	return ok
}

// Describe returns name and description pairs for every registered
// command, sorted by name.
func (r *Registry) Describe() []CommandInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	infos := make([]CommandInfo, 0, len(r.commands))
	for _, c := range r.commands {
		infos = append(infos, CommandInfo{Name: c.Name(), Description: c.Description()})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// CommandInfo is the registry listing entry returned to clients
type CommandInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
