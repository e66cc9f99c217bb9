// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package evenk

// validatedCapacity rejects a zero or non-power-of-two capacity with
// ErrInvalidCapacity rather than silently rounding it.
func validatedCapacity(capacity uint32) (uint32, error) {
	if capacity == 0 || capacity&(capacity-1) != 0 {
		return 0, ErrInvalidCapacity
	}
	return capacity, nil
}
