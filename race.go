// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringq

// RaceEnabled is true when the race detector is active.
// Tests use this to skip concurrent stress runs for generic [E] queue
// variants, which trigger false positives because the race detector
// cannot observe happens-before relationships established purely
// through acquire/release orderings on a separate sequence variable.
const RaceEnabled = true
