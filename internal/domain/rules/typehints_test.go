package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckArgumentTypeHints(t *testing.T) {
	src := "def f(a, b: int, *args, c=1, **kwargs):\n" +
		"    pass\n" +
		"\n" +
		"class Shape:\n" +
		"    def area(self, scale: float) -> float:\n" +
		"        return 0.0\n"

	findings := CheckArgumentTypeHints(views(t, src))

	assert.Equal(t, []string{
		"Argument 'a' in function 'f' is missing type hint.",
		"Argument 'args' in function 'f' is missing type hint.",
		"Argument 'c' in function 'f' is missing type hint.",
		"Argument 'kwargs' in function 'f' is missing type hint.",
		"Argument 'self' in function 'area' is missing type hint.",
	}, messages(findings))
	assert.Equal(t, []int{1, 1, 1, 1, 5}, lines(findings))
}

func TestCheckArgumentTypeHints_AllAnnotated(t *testing.T) {
	findings := CheckArgumentTypeHints(views(t, "def f(a: int, *args: str, b: int = 2, **kw: bool) -> None:\n    pass\n"))
	assert.Empty(t, findings)
}

func TestCheckVariableTypeHints(t *testing.T) {
	src := "total = 0\n" +
		"\n" +
		"def f(n: int, m):\n" +
		"    n = n + 1\n" +
		"    m = 2\n" +
		"    count: int = 0\n" +
		"    count = count + 1\n" +
		"    result = []\n" +
		"    self.value = 1\n" +
		"    items[0] = 1\n" +
		"    a, b = 1, 2\n" +
		"    for i in range(n):\n" +
		"        acc = i\n" +
		"    def inner():\n" +
		"        hidden = 1\n" +
		"    return result\n"

	findings := CheckVariableTypeHints(views(t, src))

	assert.Equal(t, []string{
		"Variable 'm' in function 'f' is missing type hint.",
		"Variable 'result' in function 'f' is missing type hint.",
		"Variable 'acc' in function 'f' is missing type hint.",
		"Variable 'hidden' in function 'inner' is missing type hint.",
	}, messages(findings))
	assert.Equal(t, []int{5, 8, 13, 15}, lines(findings))
}

func TestCheckVariableTypeHints_Chained(t *testing.T) {
	findings := CheckVariableTypeHints(views(t, "def f() -> None:\n    a = b = 1\n"))

	assert.Equal(t, []string{
		"Variable 'a' in function 'f' is missing type hint.",
		"Variable 'b' in function 'f' is missing type hint.",
	}, messages(findings))
}

func TestCheckVariableTypeHints_NoFunctions(t *testing.T) {
	assert.Empty(t, CheckVariableTypeHints(views(t, "x = 1\ny = 2\n")))
}

func TestCheckReturnTypeHint(t *testing.T) {
	src := "def typed() -> int:\n" +
		"    return 1\n" +
		"\n" +
		"def untyped():\n" +
		"    return 1\n" +
		"\n" +
		"async def fetch():\n" +
		"    pass\n"

	findings := CheckReturnTypeHint(views(t, src))

	assert.Equal(t, []string{
		"Function 'untyped' is missing return type hint.",
		"Function 'fetch' is missing return type hint.",
	}, messages(findings))
	assert.Equal(t, []int{4, 7}, lines(findings))
}
