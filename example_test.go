// SPDX-License-Identifier: MIT
//
// Copyright © 2019 Kent Gibson <warthog618@gmail.com>.

package spicds_test

import (
	"fmt"

	"github.com/warthog618/spicds"
	"github.com/warthog618/spicds/trace"
)

func ExampleCodec_Apply() {
	r := trace.NewRecorder()
	c, _ := spicds.New(r, 0, spicds.WithFamily(spicds.CS42L43), spicds.WithTclk(0))
	c.Apply(spicds.Playback, 100, 100)
	ff, _ := r.Frames()
	for _, f := range ff {
		fmt.Println(f)
	}
	// Output:
	// chip=1 reg=0x06 val=0xff
	// chip=1 reg=0x07 val=0x7f
}
