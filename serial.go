// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scope

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing guard identifier.
// Each adapter constructor assigns the next serial value; definition
// errors carry it so a misdriven guard can be located.
type Serial = uint32

// counter is the global monotonic counter for guard serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
