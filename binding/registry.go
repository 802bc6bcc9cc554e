package binding

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/ByLCY/actionlabel/styled"
)

// Registry 按名称保存可以挂到文本范围上的动作，标记文件通过 action=<name> 引用。
type Registry struct {
	mu      sync.RWMutex
	actions map[string]styled.Action
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{actions: map[string]styled.Action{}}
}

// NewDefaultRegistry 注册演示用的两个动作：
// print 把被点中的子串写到 w，notify 写一条固定消息。
func NewDefaultRegistry(w io.Writer) *Registry {
	r := NewRegistry()
	r.MustRegister("print", styled.SubstringAction(func(s string) {
		fmt.Fprintf(w, "clicked: %s\n", s)
	}))
	r.MustRegister("notify", styled.NoArgAction(func() {
		fmt.Fprintln(w, "clicked: no argument")
	}))
	return r
}

// Register adds or replaces a named action.
func (r *Registry) Register(name string, a styled.Action) error {
	if name == "" {
		return fmt.Errorf("动作名称不能为空")
	}
	switch fn := a.(type) {
	case styled.NoArgAction:
		if fn == nil {
			return fmt.Errorf("动作 %s 为空", name)
		}
	case styled.SubstringAction:
		if fn == nil {
			return fmt.Errorf("动作 %s 为空", name)
		}
	default:
		return fmt.Errorf("动作 %s 类型不受支持: %T", name, a)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions[name] = a
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, a styled.Action) {
	if err := r.Register(name, a); err != nil {
		panic(err)
	}
}

// Lookup returns the action registered under name.
func (r *Registry) Lookup(name string) (styled.Action, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.actions[name]
	return a, ok
}

// Names lists registered action names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
