// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"errors"
	"fmt"
)

// ErrEmptyDictionary is returned when a word is deleted from a dictionary
// holding no words.
var ErrEmptyDictionary = errors.New("dictionary is empty")

// ErrNotFound reports a word that is not in the dictionary: Delete returns
// it for a missing key, and lookups return it when there is neither a
// translation nor a close match to offer.
type ErrNotFound struct {
	Word string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("unable to find %q in dictionary", e.Word)
}
