// This file is part of hbcht.
//
// hbcht is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// hbcht is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with hbcht.  If not, see <https://www.gnu.org/licenses/>.

// Package performance measures the stepping speed of the interpreter.
// Check() runs a program for a length of time and reports the number of
// steps taken per second. Programs that reach the exit before the
// measurement period has elapsed end the measurement early.
//
// RunProfiler() can be used to wrap any function with the CPU and memory
// profilers. Check() uses it for its own run when asked to.
package performance
