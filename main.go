// Copyright 2016 The Gosteel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// gosteel checks structural steel members and connectors per AISC 360-16
package main

import "github.com/cpmech/gosteel/cmd"

func main() {
	cmd.Execute()
}
