// This file is part of Ticcore.
//
// Ticcore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ticcore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ticcore.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is what identifies a curated error. Packages declare their
// patterns as exported constants so that callers can test for them:
//
//	const MissingContent = "content: missing %s"
//
//	err := curated.Errorf(MissingContent, "TITLEPIC")
//	if curated.Is(err, MissingContent) {
//		...
//	}
//
// The Has() function is similar to Is() but checks the entire chain of
// wrapped curated errors:
//
//	f := curated.Errorf("demo: %v", err)
//	curated.Is(f, MissingContent)  // false
//	curated.Has(f, MissingContent) // true
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. We think of curated errors as being 'expected' and any other error as
// being 'unexpected'.
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. Wrapping an error with the same prefix at several
// levels of the call stack therefore prints the prefix only once:
//
//	content: missing TITLEPIC
//
// and not:
//
//	content: content: missing TITLEPIC
//
// Curated errors also implement Unwrap() so the errors.Is() and errors.As()
// functions of the standard library see through them.
package curated
