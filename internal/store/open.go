package store

import "context"

// New opens the store selected by driver, running migrations first when
// migrate is set. The memory driver ignores dsn.
func New(ctx context.Context, driver, dsn string, migrate bool) (Store, error) {
	if driver == DriverMemory {
		return NewMemStore(), nil
	}
	if migrate {
		if err := Migrate(driver, dsn); err != nil {
			return nil, err
		}
	}
	s, err := Open(ctx, driver, dsn)
	if err != nil {
		return nil, err
	}
	return s, nil
}
