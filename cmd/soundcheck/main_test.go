//go:build !js
// +build !js

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/simukka/ukg-math-adventure/audio"
)

func TestPlan(t *testing.T) {
	effects, music, err := plan("all")
	if err != nil || len(effects) != 3 || !music {
		t.Errorf("Expected 3 effects and music, got %v %v %v", effects, music, err)
	}

	effects, music, err = plan("wrong")
	if err != nil || len(effects) != 1 || effects[0] != audio.EffectWrong || music {
		t.Errorf("Expected only the wrong buzz, got %v %v %v", effects, music, err)
	}

	effects, music, _ = plan("music")
	if len(effects) != 0 || !music {
		t.Errorf("Expected music only, got %v %v", effects, music)
	}

	if _, _, err := plan("kazoo"); err == nil {
		t.Error("Expected an error for an unknown sound")
	}
}

func TestBarDuration(t *testing.T) {
	if got := barDuration(audio.ShuffleSong); got != 16*135*time.Millisecond {
		t.Errorf("Expected 2.16s per bar, got %v", got)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"-sound", "kazoo"}, `unknown sound "kazoo"`},
		{[]string{"-bars", "many"}, "invalid value"},
		{[]string{"-loud"}, "flag provided but not defined"},
	}
	for _, c := range cases {
		var stderr bytes.Buffer
		if code := run(c.args, &stderr); code != 2 {
			t.Errorf("Expected exit code 2 for %v, got %d", c.args, code)
		}
		if !strings.Contains(stderr.String(), c.want) {
			t.Errorf("Expected %q in output for %v, got %q", c.want, c.args, stderr.String())
		}
	}
}
