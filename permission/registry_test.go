package permission

import "testing"

func TestRegistryAssignsSequentialBits(t *testing.T) {
	r := NewRegistry()

	names := []string{"a.view", "a.edit", "b.view"}
	for i, name := range names {
		bit, err := r.Register(name)
		if err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
		if bit != i {
			t.Fatalf("Register(%q) bit = %d, want %d", name, bit, i)
		}
	}

	if got := r.Count(); got != len(names) {
		t.Fatalf("Count() = %d, want %d", got, len(names))
	}

	for i, name := range names {
		bit, ok := r.Bit(name)
		if !ok || bit != i {
			t.Errorf("Bit(%q) = %d, %v, want %d, true", name, bit, ok, i)
		}
		back, ok := r.Name(i)
		if !ok || back != name {
			t.Errorf("Name(%d) = %q, %v, want %q, true", i, back, ok, name)
		}
	}
}

func TestRegistryRejectsDuplicatesAndEmpty(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Register("x.view"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := r.Register("x.view"); err == nil {
		t.Error("duplicate Register succeeded, want error")
	}
	if _, err := r.Register(""); err == nil {
		t.Error("empty Register succeeded, want error")
	}
}

func TestRegistryFreezeBlocksRegistration(t *testing.T) {
	r := NewRegistry()
	r.Freeze()

	if _, err := r.Register("late.view"); err == nil {
		t.Error("Register after Freeze succeeded, want error")
	}
}

func TestRegistryLimit(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < maxPermissions; i++ {
		if _, err := r.Register(string(rune('A'+i/26)) + string(rune('a'+i%26))); err != nil {
			t.Fatalf("Register #%d: %v", i, err)
		}
	}
	if _, err := r.Register("overflow"); err == nil {
		t.Error("Register past limit succeeded, want error")
	}
}

func TestRegistryNamesInBitOrder(t *testing.T) {
	r := NewRegistry()
	want := []string{"c.view", "a.view", "b.view"}
	for _, name := range want {
		if _, err := r.Register(name); err != nil {
			t.Fatalf("Register(%q): %v", name, err)
		}
	}

	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRoleManagerUnknownPermission(t *testing.T) {
	r := NewRegistry()
	rm := NewRoleManager(r)

	if err := rm.RegisterRole("ghost", []string{"nonexistent.view"}); err == nil {
		t.Error("RegisterRole with unknown permission succeeded, want error")
	}
	if err := rm.Grant("ghost", "nonexistent.view"); err == nil {
		t.Error("Grant with unknown permission succeeded, want error")
	}
}

func TestRoleManagerFreeze(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Register("x.view"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	rm := NewRoleManager(r)
	rm.Freeze()

	if err := rm.RegisterRole("late", []string{"x.view"}); err == nil {
		t.Error("RegisterRole after Freeze succeeded, want error")
	}
	if err := rm.Grant("late", "x.view"); err == nil {
		t.Error("Grant after Freeze succeeded, want error")
	}
}

func TestRouteTableBindAndFreeze(t *testing.T) {
	rt := NewRouteTable()

	if err := rt.Bind("/payments", "payments.view"); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := rt.Bind("/payments", "payments.edit"); err == nil {
		t.Error("duplicate Bind succeeded, want error")
	}
	if err := rt.Bind("", "payments.view"); err == nil {
		t.Error("empty path Bind succeeded, want error")
	}
	if err := rt.Bind("/reports", ""); err == nil {
		t.Error("empty permission Bind succeeded, want error")
	}

	perm, ok := rt.Required("/payments")
	if !ok || perm != "payments.view" {
		t.Errorf("Required(/payments) = %q, %v, want payments.view, true", perm, ok)
	}
	if _, ok := rt.Required("/dashboard"); ok {
		t.Error("Required(/dashboard) bound, want unbound")
	}

	rt.Freeze()
	if err := rt.Bind("/late", "x.view"); err == nil {
		t.Error("Bind after Freeze succeeded, want error")
	}
}

func TestMask64Bounds(t *testing.T) {
	var m Mask64
	m.Set(-1)
	m.Set(64)
	if m.Raw() != 0 {
		t.Errorf("out-of-range Set changed mask: %#x", m.Raw())
	}
	m.Set(0)
	m.Set(63)
	if !m.Has(0) || !m.Has(63) {
		t.Error("Set bits not reported by Has")
	}
	if m.Has(-1) || m.Has(64) {
		t.Error("Has reported out-of-range bits")
	}
	m.Clear(63)
	if m.Has(63) {
		t.Error("Clear(63) did not clear bit")
	}
}
