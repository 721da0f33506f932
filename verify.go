// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringq

var (
	_ Queue[int] = (*SPSC[int])(nil)
	_ Queue[int] = (*MPSC[int])(nil)
	_ Queue[int] = (*SPMC[int])(nil)
	_ Queue[int] = (*MPMC[int])(nil)

	_ Drainer[int] = (*SPSC[int])(nil)
	_ Drainer[int] = (*MPSC[int])(nil)
)
