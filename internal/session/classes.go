package session

// ClassInfo is one entry of declaredClasses (spec §3): the class registry
// used by the weighter (stage 9) and the renderer's name-resolution
// context (stage 10).
type ClassInfo struct {
	ID             int
	Name           string
	IsInterface    bool
	BaseName       string
	InterfaceNames []string
	ScopeID        int // -1 at top level; otherwise the enclosing class's ID

	Base       *ClassInfo
	Derived    []*ClassInfo
	Interfaces []*ClassInfo

	Fields       map[string]bool // name -> isStatic
	Methods      map[string]bool // name -> isStatic
	InnerClasses map[string]int  // name -> class ID

	Weight int
}

// NewClassInfo creates a registry entry with its member sets initialized.
func NewClassInfo(id int, name string, scopeID int, isInterface bool) *ClassInfo {
	return &ClassInfo{
		ID:           id,
		Name:         name,
		ScopeID:      scopeID,
		IsInterface:  isInterface,
		Fields:       make(map[string]bool),
		Methods:      make(map[string]bool),
		InnerClasses: make(map[string]int),
	}
}

// ClassRegistry is declaredClasses: every class/interface discovered during
// AST construction, indexed by classId, plus a name index for scope
// resolution.
type ClassRegistry struct {
	byID   map[int]*ClassInfo
	nextID int
}

// NewClassRegistry returns an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{byID: make(map[int]*ClassInfo)}
}

// NewClassID returns the next unused classId (classIdSeed in spec §9).
func (r *ClassRegistry) NewClassID() int {
	id := r.nextID
	r.nextID++
	return id
}

// Register records a ClassInfo under its ID.
func (r *ClassRegistry) Register(c *ClassInfo) {
	r.byID[c.ID] = c
}

// Get looks up a class by ID.
func (r *ClassRegistry) Get(id int) (*ClassInfo, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// All returns every registered class, in ascending ID order (insertion
// order, since IDs are assigned monotonically).
func (r *ClassRegistry) All() []*ClassInfo {
	out := make([]*ClassInfo, 0, len(r.byID))
	for id := 0; id < r.nextID; id++ {
		if c, ok := r.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out
}

// FindByName resolves a possibly-dotted name to a class, first within the
// scope given by scopeID (the class whose inner classes are searched
// first), then its enclosing scopes, finally globally. This implements the
// scope-chain lookup spec §4.7 requires for resolving baseName and
// interfaceNames.
func (r *ClassRegistry) FindByName(name string, scopeID int) (*ClassInfo, bool) {
	head, rest := name, ""
	if idx := indexOfDot(name); idx >= 0 {
		head, rest = name[:idx], name[idx+1:]
	}
	// The remaining segments are resolved starting from the class the
	// head names.
	descend := func(c *ClassInfo) (*ClassInfo, bool) {
		if rest == "" {
			return c, true
		}
		return r.FindByName(rest, c.ID)
	}

	for scope := scopeID; scope >= 0; {
		owner, ok := r.byID[scope]
		if !ok {
			break
		}
		if innerID, ok := owner.InnerClasses[head]; ok {
			return descend(r.byID[innerID])
		}
		scope = owner.ScopeID
	}

	for _, c := range r.byID {
		if c.ScopeID == -1 && c.Name == head {
			return descend(c)
		}
	}
	return nil, false
}

func indexOfDot(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			return i
		}
	}
	return -1
}
