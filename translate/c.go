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

package translate

import (
	"fmt"
	"io"

	"github.com/nqpz/hbcht/program"
)

// the fixed parts of the generated C source. the generated program keeps
// the memory tape in two growable arrays, one per sign of the index
const cPrelude = `#include <stdio.h>
#include <stdlib.h>
#include <string.h>
#include <time.h>

static long long *mem_pos = NULL;
static long long *mem_neg = NULL;
static size_t len_pos = 0;
static size_t len_neg = 0;
static long long top = -1;

static long long *cell(long long idx)
{
	long long **mem = &mem_pos;
	size_t *len = &len_pos;
	size_t want;

	if (idx < 0) {
		mem = &mem_neg;
		len = &len_neg;
		idx = -idx - 1;
	}

	want = (size_t)idx + 1;
	if (want > *len) {
		size_t grown = *len ? *len : 16;
		while (grown < want) {
			grown *= 2;
		}
		*mem = realloc(*mem, grown * sizeof(**mem));
		if (*mem == NULL) {
			fprintf(stderr, "out of memory\n");
			exit(1);
		}
		memset(*mem + *len, 0, (grown - *len) * sizeof(**mem));
		*len = grown;
	}

	return *mem + idx;
}

static void wrote(long long idx)
{
	if (idx >= 0 && idx > top) {
		top = idx;
	}
}
`

// CWriter emits a self-contained C source file reproducing the semantics of
// the compiled program.
//
// Memory cells in the emitted program are 64-bit integers rather than
// arbitrary precision. This is an intentionally imperfect conformance mode
// and the generated source says so.
type CWriter struct {
	// emit only the core function, without a main() function
	FunctionOnly bool
}

// Write the C source for the compilation to the output writer.
func (cw CWriter) Write(output io.Writer, name string, prg *program.Program, cc *Compilation) error {
	w := &errWriter{output: output}

	w.printf("/* %s: translated from a Half-Broken Car in Heavy Traffic program.\n", name)
	w.printf(" *\n")
	w.printf(" * memory cells are 64-bit integers. a conforming implementation uses\n")
	w.printf(" * arbitrary precision cells that never overflow.\n")
	w.printf(" */\n\n")
	w.printf("%s\n", cPrelude)

	// the core function. one label per command, control flow by goto
	w.printf("long long *hbcht_run(int dir, const long long *input, size_t input_len, long long *top_out)\n")
	w.printf("{\n")
	w.printf("\tlong long ptr = 0;\n")
	w.printf("\tsize_t i;\n\n")
	w.printf("\tfor (i = 0; i < input_len; i++) {\n")
	w.printf("\t\t*cell((long long)i) = input[i];\n")
	w.printf("\t\twrote((long long)i);\n")
	w.printf("\t}\n\n")
	w.printf("\tswitch (dir) {\n")
	for i, entry := range cc.Entry {
		w.printf("\tcase %d: goto c%d;\n", i, entry)
	}
	w.printf("\t}\n\n")

	for i, cmd := range cc.Commands {
		w.printf("c%d:\n", i)
		switch cmd.Op {
		case Goto:
			w.printf("\tgoto c%d;\n", cmd.Arg)
		case Compare:
			w.printf("\tif (*cell(ptr) != *cell(ptr - 1)) goto c%d;\n", cmd.Arg)
		case Increment:
			w.printf("\t++*cell(ptr);\n")
			w.printf("\twrote(ptr);\n")
		case Decrement:
			w.printf("\t--*cell(ptr);\n")
			w.printf("\twrote(ptr);\n")
		case Next:
			w.printf("\t++ptr;\n")
		case Prev:
			w.printf("\t--ptr;\n")
		case Exit:
			w.printf("\tgoto done;\n")
		}
	}

	w.printf("\ndone:\n")
	w.printf("\t*top_out = top;\n")
	w.printf("\treturn mem_pos;\n")
	w.printf("}\n")

	if !cw.FunctionOnly {
		cw.writeMain(w, prg)
	}

	return w.err
}

// writeMain emits a main() function: parse the command line arguments,
// choose a random direction and report the final tape.
func (cw CWriter) writeMain(w *errWriter, prg *program.Program) {
	w.printf("\nint main(int argc, char **argv)\n")
	w.printf("{\n")
	w.printf("\tlong long *out;\n")
	w.printf("\tlong long top_out;\n")
	w.printf("\tlong long n;\n")
	w.printf("\tlong long *input = NULL;\n")
	w.printf("\tsize_t input_len = 0;\n")
	w.printf("\tint i;\n\n")

	if prg.InText {
		w.printf("\t/* @intext: every character of every argument is an input value */\n")
		w.printf("\tfor (i = 1; i < argc; i++) {\n")
		w.printf("\t\tchar *p;\n")
		w.printf("\t\tfor (p = argv[i]; *p != '\\0'; p++) {\n")
		w.printf("\t\t\tinput = realloc(input, (input_len + 1) * sizeof(*input));\n")
		w.printf("\t\t\tinput[input_len++] = (long long)(unsigned char)*p;\n")
		w.printf("\t\t}\n")
		w.printf("\t}\n\n")
	} else {
		w.printf("\tfor (i = 1; i < argc; i++) {\n")
		w.printf("\t\tn = strtoll(argv[i], NULL, 10);\n")
		w.printf("\t\tif (n < 0) {\n")
		w.printf("\t\t\tfprintf(stderr, \"negative value in input (%%lld)\\n\", n);\n")
		w.printf("\t\t\treturn 1;\n")
		w.printf("\t\t}\n")
		w.printf("\t\tinput = realloc(input, (input_len + 1) * sizeof(*input));\n")
		w.printf("\t\tinput[input_len++] = n;\n")
		w.printf("\t}\n\n")
	}

	w.printf("\tsrand((unsigned int)time(NULL));\n")
	w.printf("\tout = hbcht_run(rand() %% 4, input, input_len, &top_out);\n\n")

	if prg.OutText {
		w.printf("\t/* @outtext: every output value is a character */\n")
		w.printf("\tfor (n = 0; n <= top_out; n++) {\n")
		w.printf("\t\tputchar((int)out[n]);\n")
		w.printf("\t}\n")
		w.printf("\tputchar('\\n');\n")
	} else {
		w.printf("\tfor (n = 0; n <= top_out; n++) {\n")
		w.printf("\t\tprintf(\"%%lld: %%lld\\n\", n, out[n]);\n")
		w.printf("\t}\n")
	}

	w.printf("\treturn 0;\n")
	w.printf("}\n")
}

// errWriter folds the error handling of repeated writes into one check.
type errWriter struct {
	output io.Writer
	err    error
}

func (w *errWriter) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.output, format, args...)
}
