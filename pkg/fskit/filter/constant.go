package filter

import "io/fs"

type constantFilter struct {
	accept bool
	name   string
}

var _ Filter = (*constantFilter)(nil)

var (
	// True accepts every item.
	True Filter = &constantFilter{accept: true, name: "True"}

	// False rejects every item.
	False Filter = &constantFilter{accept: false, name: "False"}
)

func (c *constantFilter) Accept(path string) bool {
	return c.accept
}

func (c *constantFilter) AcceptName(dir, name string) bool {
	return c.accept
}

func (c *constantFilter) AcceptEntry(path string, entry fs.DirEntry) (VisitResult, error) {
	return verdict(c.accept), nil
}

func (c *constantFilter) String() string {
	return c.name
}
