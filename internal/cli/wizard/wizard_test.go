package wizard

import "testing"

func TestValidateName(t *testing.T) {
	valid := []string{"myapp", "shop-app", "app2", "My.App"}
	for _, name := range valid {
		if err := validateName(name); err != nil {
			t.Errorf("validateName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{"", "a/b", "..", "-leading", ".hidden"}
	for _, name := range invalid {
		if err := validateName(name); err == nil {
			t.Errorf("validateName(%q) = nil, want error", name)
		}
	}
}
