// SPDX-License-Identifier: GPL-2.0-or-later

package cmd

import "testing"

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		in     string
		wantF  string
		wantAS string
		wantA  []QArg
	}{
		{
			in:     `playsound 12`,
			wantF:  `playsound 12`,
			wantAS: `12`,
			wantA:  []QArg{{"playsound"}, {"12"}},
		},
		{
			in:     `set snd_name "hum loop"`,
			wantF:  `set snd_name "hum loop"`,
			wantAS: `snd_name "hum loop"`,
			wantA:  []QArg{{"set"}, {"snd_name"}, {"hum loop"}},
		},
		{
			in:     ` link  3 12  forever `,
			wantF:  `link  3 12  forever`,
			wantAS: `3 12  forever`,
			wantA:  []QArg{{"link"}, {"3"}, {"12"}, {"forever"}},
		},
		{
			in:     `tick 4 // advance`,
			wantF:  `tick 4 // advance`,
			wantAS: `4 // advance`,
			wantA:  []QArg{{"tick"}, {"4"}},
		},
		{
			in:     "stopsound\nignored",
			wantF:  `stopsound`,
			wantAS: ``,
			wantA:  []QArg{{"stopsound"}},
		},
	} {
		arg := Parse(tc.in)
		if tc.wantF != arg.Full() {
			t.Errorf("Parse(%q).Full()=%q, want %q", tc.in, arg.Full(), tc.wantF)
		}
		if tc.wantAS != arg.ArgumentString() {
			t.Errorf("Parse(%q).ArgumentString()=%q, want %q", tc.in, arg.ArgumentString(), tc.wantAS)
		}
		as := arg.Args()
		if len(tc.wantA) != len(as) {
			t.Fatalf("Parse(%q).Args() has len(%d), want %d", tc.in, len(as), len(tc.wantA))
		}
		for i := range tc.wantA {
			if tc.wantA[i] != as[i] {
				t.Errorf("Arg[%d]=%q, want %q", i, as[i], tc.wantA[i])
			}
		}
	}
}

func TestQArg(t *testing.T) {
	if got := (QArg{"42"}).Int(); got != 42 {
		t.Errorf("QArg(42).Int() = %v", got)
	}
	if got := (QArg{"x"}).Int(); got != 0 {
		t.Errorf("QArg(x).Int() = %v", got)
	}
	if got := (QArg{"0.5"}).Float32(); got != 0.5 {
		t.Errorf("QArg(0.5).Float32() = %v", got)
	}
	if !(QArg{"on"}).Bool() || (QArg{"0"}).Bool() {
		t.Errorf("QArg.Bool() mismatch")
	}
}

func TestCommands(t *testing.T) {
	c := New()
	called := 0
	if err := c.Add("StopSound", func(a Arguments) error {
		called++
		return nil
	}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := c.Add("stopsound", func(Arguments) error { return nil }); err == nil {
		t.Errorf("Add of duplicate command did not fail")
	}
	ok, err := c.Execute(Parse("STOPSOUND"))
	if !ok || err != nil || called != 1 {
		t.Errorf("Execute(STOPSOUND) = %v, %v, called %d", ok, err, called)
	}
	ok, _ = c.Execute(Parse("unknown"))
	if ok {
		t.Errorf("Execute(unknown) reported success")
	}
}
