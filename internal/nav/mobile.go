package nav

import "sync"

// ScrollLock suppresses page scrolling while held.
type ScrollLock interface {
	Acquire()
	Release()
}

// BodyScroll is a reference-counted ScrollLock: scrolling stays suppressed
// while any holder remains. Releasing more than was acquired is ignored.
type BodyScroll struct {
	mu    sync.Mutex
	holds int
}

func (b *BodyScroll) Acquire() {
	b.mu.Lock()
	b.holds++
	b.mu.Unlock()
}

func (b *BodyScroll) Release() {
	b.mu.Lock()
	if b.holds > 0 {
		b.holds--
	}
	b.mu.Unlock()
}

// Locked reports whether scrolling is suppressed.
func (b *BodyScroll) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.holds > 0
}

// MobileMenu is the open/closed state of the small-screen menu. The scroll
// lock is held exactly while the menu is open.
type MobileMenu struct {
	lock     ScrollLock
	open     bool
	tornDown bool
}

// NewMobileMenu returns a closed menu bound to lock.
func NewMobileMenu(lock ScrollLock) *MobileMenu {
	return &MobileMenu{lock: lock}
}

// IsOpen reports whether the menu is expanded.
func (m *MobileMenu) IsOpen() bool { return m.open }

// State is the value rendered into data-menu-state.
func (m *MobileMenu) State() string {
	if m.open {
		return "open"
	}
	return "closed"
}

// Toggle flips the menu, as the trigger button does.
func (m *MobileMenu) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open()
}

// Open expands the menu and suppresses page scroll.
func (m *MobileMenu) Open() {
	if m.tornDown || m.open {
		return
	}
	m.open = true
	m.lock.Acquire()
}

// Close collapses the menu. The backdrop, the close control and every link
// call it.
func (m *MobileMenu) Close() {
	if m.tornDown || !m.open {
		return
	}
	m.open = false
	m.lock.Release()
}

// Teardown releases a held lock once. The menu is inert afterwards.
func (m *MobileMenu) Teardown() {
	if m.tornDown {
		return
	}
	m.Close()
	m.tornDown = true
}
