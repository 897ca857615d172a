/*
Copyright © 2018 the InMAP authors.
This file is part of the InMAP angle library.

This library is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This library is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this library.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command angle is a command-line calculator for angles and azimuths.
package main

import (
	"fmt"
	"os"

	"github.com/spatialmodel/angle/angleutil"
)

func main() {
	if err := angleutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
