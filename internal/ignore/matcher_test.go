package ignore

import (
	"io"
	"path/filepath"
	"testing"

	log "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestMatcher 是测试辅助函数，日志写入 io.Discard。
func newTestMatcher(t *testing.T, root string, patterns []string, includeHidden bool) *Matcher {
	t.Helper()

	matcher, err := New(root, patterns, includeHidden, log.New(io.Discard))
	require.NoError(t, err)
	return matcher
}

// TestHiddenPolicyBeforePatterns 验证隐藏路径策略独立于模式列表，
// 即使模式列表为空也会生效。
func TestHiddenPolicyBeforePatterns(t *testing.T) {
	root := "/project"
	matcher := newTestMatcher(t, root, nil, false)

	assert.True(t, matcher.ShouldIgnore("/project/.git"))
	assert.True(t, matcher.ShouldIgnore("/project/sub/.hidden.py"))
	assert.False(t, matcher.ShouldIgnore("/project/visible.py"))
}

// TestIncludeHiddenDisablesPolicy 验证 includeHidden 打开后隐藏路径不再排除。
func TestIncludeHiddenDisablesPolicy(t *testing.T) {
	matcher := newTestMatcher(t, "/project", nil, true)

	assert.False(t, matcher.ShouldIgnore("/project/.git"))
	assert.False(t, matcher.ShouldIgnore("/project/.env.py"))
}

// TestEmptyPatternsMatchNothing 验证空模式列表只受隐藏策略影响。
func TestEmptyPatternsMatchNothing(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{}, false)

	assert.False(t, matcher.ShouldIgnore("/project/a.py"))
	assert.False(t, matcher.ShouldIgnore("/project/sub/b.py"))
}

// TestBasenamePattern 验证模式可以只命中文件名形态。
func TestBasenamePattern(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{"sub"}, false)

	assert.True(t, matcher.ShouldIgnore("/project/sub"))
	assert.False(t, matcher.ShouldIgnore("/project/a.py"))
}

// TestGlobWildcards 验证 *、? 和方括号字符类。
func TestGlobWildcards(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{"*.gen.py", "tmp?", "[bB]uild"}, false)

	assert.True(t, matcher.ShouldIgnore("/project/api.gen.py"))
	assert.True(t, matcher.ShouldIgnore("/project/sub/model.gen.py"))
	assert.True(t, matcher.ShouldIgnore("/project/tmp1"))
	assert.True(t, matcher.ShouldIgnore("/project/Build"))
	assert.True(t, matcher.ShouldIgnore("/project/build"))
	assert.False(t, matcher.ShouldIgnore("/project/tmp"))
	assert.False(t, matcher.ShouldIgnore("/project/api.py"))
}

// TestAbsolutePatternMatchesRelativeForm 验证绝对模式能命中
// 按相对路径寻址的条目，反之亦然（候选形态互补展开）。
func TestAbsolutePatternMatchesRelativeForm(t *testing.T) {
	root := "/project"

	absolute := newTestMatcher(t, root, []string{"/project/build"}, false)
	assert.True(t, absolute.ShouldIgnore(filepath.Join(root, "build")))

	relative := newTestMatcher(t, root, []string{"build"}, false)
	assert.True(t, relative.ShouldIgnore("/project/build"))
}

// TestRelativePathPattern 验证带目录层级的相对模式命中相对形态。
func TestRelativePathPattern(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{"vendor/*"}, false)

	assert.True(t, matcher.ShouldIgnore("/project/vendor/lib.py"))
	assert.False(t, matcher.ShouldIgnore("/project/src/lib.py"))
}

// TestCaseSensitiveMatch 验证匹配区分大小写。
func TestCaseSensitiveMatch(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{"Build"}, false)

	assert.True(t, matcher.ShouldIgnore("/project/Build"))
	assert.False(t, matcher.ShouldIgnore("/project/build"))
}

// TestBadPatternIsSkipped 验证非法模式不影响其他模式的判定。
func TestBadPatternIsSkipped(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{"[unclosed", "sub"}, false)

	assert.True(t, matcher.ShouldIgnore("/project/sub"))
	assert.False(t, matcher.ShouldIgnore("/project/a.py"))
}

// TestDeterministicOutcome 验证相同输入永远得到相同结论。
func TestDeterministicOutcome(t *testing.T) {
	matcher := newTestMatcher(t, "/project", []string{"sub", "*.gen.py"}, false)

	for i := 0; i < 3; i++ {
		assert.True(t, matcher.ShouldIgnore("/project/sub"))
		assert.False(t, matcher.ShouldIgnore("/project/a.py"))
	}
}
