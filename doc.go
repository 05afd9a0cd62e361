/*
Package scapegoat offers an ordered set of keys, kept in a self-balancing
binary search tree.

Scapegoat Trees

A scapegoat tree does not store any balance information in its nodes. Neither
colors (as red-black trees do) nor heights (as AVL trees do) have to be
maintained, and no rotations are ever performed. Instead, the tree remembers
a single number: the largest size it has reached since it was last rebuilt
(the upper bound). After every insertion and deletion two criteria are checked:

	size   ≥ ⅔ · upperBound            (weight criterion)
	height ≤ log_{3/2}(upperBound)     (height criterion)

If an insertion violates a criterion, the tree walks up from the new node to
the first ancestor whose subtree is unbalanced by weight (one child holds more
than ⅔ of the ancestor's nodes). This ancestor is the scapegoat. Its subtree is
rebuilt into perfect balance, and only its subtree. If a deletion violates a
criterion, the complete tree is rebuilt.

Rebuilding a subtree of k nodes costs O(k), but the nodes inserted along a path
pay for it in advance, which results in amortized O(log n) insertion and
deletion, and worst-case O(log n) lookup.

	Operation     |  amortized   |  worst case
	--------------+--------------+------------
	Contains/Get  |  O(log n)    |  O(log n)
	Add           |  O(log n)    |  O(n)
	Remove        |  O(log n)    |  O(n)

The bounds hold for distinct keys. Equal keys are accepted and always placed
in the left subtree of their equals; many duplicates degrade the tree towards
a list.

Trees are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package scapegoat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

// TreeError is an error type for the scapegoat module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIllegalArguments is flagged whenever function parameters are invalid,
// including absent (nil) keys.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvariant is flagged by Check whenever a tree invariant does not hold.
const ErrInvariant = TreeError("tree invariant violated")
