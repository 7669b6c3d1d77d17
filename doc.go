// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package pystr provides Python style string operations over an immutable
// byte string type.
//
// All operations are byte oriented: indexes are byte offsets and case
// conversion and character classes only consider ASCII. Bytes outside of
// ASCII are passed through unchanged, no locale or Unicode rules are applied.
//
// The zero value of [Str] is the empty string and every method is safe to
// call on it. No method modifies its receiver.
package pystr

// BUG(cvieth): Contains("") reports true while Count("") returns 0. Both are
// intentional and match the behavior callers of this package rely on, but
// they disagree with strings.Count which counts an empty match between every
// rune.
