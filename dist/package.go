// Copyright 2018 The go-datautil Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist estimates empirical distributions from samples.
package dist // import "github.com/cxdata/go-datautil/dist"
