package diagnostic

import (
	"os"
	"testing"
	"time"

	"github.com/abhisek/gauge/internal/itembank"
)

func TestPlanFor(t *testing.T) {
	tests := []struct {
		typ     Type
		wantMax int
		wantErr bool
	}{
		{TypeQuick, 12, false},
		{TypeFull, 24, false},
		{TypeDomainFocused, 0, true}, // needs a domain
		{Type("bogus"), 0, true},
	}

	for _, tt := range tests {
		plan, err := PlanFor(tt.typ)
		if tt.wantErr {
			if err == nil {
				t.Errorf("PlanFor(%s): expected error", tt.typ)
			}
			continue
		}
		if err != nil {
			t.Errorf("PlanFor(%s): %v", tt.typ, err)
			continue
		}
		if plan.MaxQuestions != tt.wantMax {
			t.Errorf("PlanFor(%s).MaxQuestions = %d, want %d", tt.typ, plan.MaxQuestions, tt.wantMax)
		}
		if err := plan.Validate(); err != nil {
			t.Errorf("PlanFor(%s) invalid: %v", tt.typ, err)
		}
	}
}

func TestQuickPlanCoversAllDomains(t *testing.T) {
	plan := QuickPlan()
	for _, d := range itembank.AllDomains() {
		if plan.Quotas[d] != 1 {
			t.Errorf("quota[%s] = %d, want 1", d, plan.Quotas[d])
		}
	}
	sum := 0
	for _, q := range plan.Quotas {
		sum += q
	}
	if sum > plan.MaxQuestions {
		t.Errorf("quota sum %d exceeds max questions %d", sum, plan.MaxQuestions)
	}
}

func TestDomainFocusedPlan(t *testing.T) {
	plan := DomainFocusedPlan(itembank.DomainGeometry)
	if plan.FocusDomain != itembank.DomainGeometry {
		t.Errorf("focus = %s, want geometry", plan.FocusDomain)
	}
	if plan.Quotas[itembank.DomainGeometry] != plan.MaxQuestions {
		t.Errorf("quota = %d, want the full question budget %d",
			plan.Quotas[itembank.DomainGeometry], plan.MaxQuestions)
	}
	if err := plan.Validate(); err != nil {
		t.Errorf("plan invalid: %v", err)
	}
}

func TestPlanValidate(t *testing.T) {
	tests := []struct {
		name    string
		plan    Plan
		wantErr bool
	}{
		{"valid", QuickPlan(), false},
		{"zero max", Plan{Type: TypeQuick, MaxQuestions: 0}, true},
		{"unknown quota domain", Plan{Type: TypeQuick, MaxQuestions: 5, Quotas: map[itembank.Domain]int{"algebra": 1}}, true},
		{"negative quota", Plan{Type: TypeQuick, MaxQuestions: 5, Quotas: map[itembank.Domain]int{itembank.DomainData: -1}}, true},
		{"unknown focus", Plan{Type: TypeDomainFocused, MaxQuestions: 5, FocusDomain: "algebra"}, true},
	}

	for _, tt := range tests {
		err := tt.plan.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("GAUGE_MIN_QUESTIONS", "7")
	t.Setenv("GAUGE_PRECISION_SE", "0.25")
	t.Setenv("GAUGE_INACTIVITY_WINDOW", "2h")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config from env: %v", err)
	}
	if cfg.MinQuestions != 7 {
		t.Errorf("MinQuestions = %d, want 7", cfg.MinQuestions)
	}
	if cfg.PrecisionSE != 0.25 {
		t.Errorf("PrecisionSE = %g, want 0.25", cfg.PrecisionSE)
	}
	if cfg.InactivityWindow != 2*time.Hour {
		t.Errorf("InactivityWindow = %s, want 2h", cfg.InactivityWindow)
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"GAUGE_MIN_QUESTIONS", "GAUGE_PRECISION_SE", "GAUGE_INACTIVITY_WINDOW"} {
		t.Setenv(key, "") // register restore
		os.Unsetenv(key)
	}

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("config from env: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", DefaultConfig(), false},
		{"zero floor", Config{MinQuestions: 0, PrecisionSE: 0.3, InactivityWindow: time.Hour}, true},
		{"zero precision", Config{MinQuestions: 5, PrecisionSE: 0, InactivityWindow: time.Hour}, true},
		{"zero window", Config{MinQuestions: 5, PrecisionSE: 0.3, InactivityWindow: 0}, true},
	}

	for _, tt := range tests {
		err := tt.cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: err = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
