package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColumn_Flags(t *testing.T) {
	col := parseColumn("`id` bigint NOT NULL AUTO_INCREMENT PRIMARY KEY COMMENT '主键'")
	require.NotNil(t, col)

	assert.Equal(t, "id", col.Name)
	assert.Equal(t, "BIGINT", col.Type.Name)
	assert.False(t, col.Nullable)
	assert.True(t, col.AutoIncrement)
	assert.True(t, col.PrimaryKey)
	assert.Equal(t, "主键", col.Comment)
}

func TestParseColumn_NullableByDefault(t *testing.T) {
	col := parseColumn("remark varchar(255)")
	require.NotNil(t, col)

	assert.True(t, col.Nullable)
	assert.False(t, col.AutoIncrement)
	assert.False(t, col.PrimaryKey)
	assert.Nil(t, col.Default)
	assert.Empty(t, col.Comment)
}

func TestParseColumn_NumericDefaultFromQuotedLiteral(t *testing.T) {
	col := parseColumn("status TINYINT(1) DEFAULT '1' COMMENT 'active flag'")
	require.NotNil(t, col)

	assert.Equal(t, int64(1), col.Default)
	assert.Equal(t, "active flag", col.Comment)
}

func TestParseColumn_DecimalDefault(t *testing.T) {
	col := parseColumn("ratio decimal(5,2) DEFAULT '0.75'")
	require.NotNil(t, col)

	assert.Equal(t, 0.75, col.Default)
}

func TestParseColumn_StringDefaultStaysString(t *testing.T) {
	col := parseColumn("country char(2) DEFAULT 'CN'")
	require.NotNil(t, col)

	assert.Equal(t, "CN", col.Default)
}

func TestParseColumn_LeadingZeroDefaultIsDecimal(t *testing.T) {
	col := parseColumn("perm smallint DEFAULT '0700'")
	require.NotNil(t, col)

	assert.Equal(t, int64(700), col.Default)
}

func TestParseColumn_HexLookalikeDefaultStaysString(t *testing.T) {
	col := parseColumn("mask varchar(10) DEFAULT '0x10'")
	require.NotNil(t, col)

	assert.Equal(t, "0x10", col.Default)
}

func TestParseColumn_NegativeNumericDefaults(t *testing.T) {
	col := parseColumn("offset_v int DEFAULT -1")
	require.NotNil(t, col)
	assert.Equal(t, int64(-1), col.Default)

	col = parseColumn("delta decimal(4,2) DEFAULT '-0.5'")
	require.NotNil(t, col)
	assert.Equal(t, -0.5, col.Default)
}

func TestParseColumn_DefaultKeywordInsideCommentIgnored(t *testing.T) {
	col := parseColumn("note varchar(10) COMMENT 'default value'")
	require.NotNil(t, col)

	assert.Nil(t, col.Default)
	assert.Equal(t, "default value", col.Comment)
}

func TestParseColumn_ConstraintWordsInsideCommentIgnored(t *testing.T) {
	col := parseColumn("ref_id bigint COMMENT 'primary key of users, not null there'")
	require.NotNil(t, col)

	assert.False(t, col.PrimaryKey)
	assert.True(t, col.Nullable)
	assert.False(t, col.AutoIncrement)
	assert.Equal(t, "primary key of users, not null there", col.Comment)
}

func TestParseColumn_CurrentTimestampSentinel(t *testing.T) {
	col := parseColumn("created_at DATETIME DEFAULT CURRENT_TIMESTAMP")
	require.NotNil(t, col)

	assert.Equal(t, "CURRENT_TIMESTAMP", col.Default)
}

func TestParseColumn_DefaultNullMeansNoDefault(t *testing.T) {
	col := parseColumn("c2 int DEFAULT NULL COMMENT 'c2'")
	require.NotNil(t, col)

	assert.Nil(t, col.Default)
	assert.True(t, col.Nullable)
}

func TestParseColumn_EnumComment(t *testing.T) {
	col := parseColumn("state tinyint DEFAULT 0 COMMENT '状态【枚举】：0-待处理，1-处理中'")
	require.NotNil(t, col)

	require.Len(t, col.Enum, 2)
	assert.Equal(t, 0, col.Enum[0].Value)
	assert.Equal(t, "待处理", col.Enum[0].Label)
	assert.Equal(t, 1, col.Enum[1].Value)
	assert.Equal(t, "处理中", col.Enum[1].Label)
}

func TestParseColumn_TypeWithSpacedLength(t *testing.T) {
	col := parseColumn(`"TS" TIMESTAMP (6) NOT NULL`)
	require.NotNil(t, col)

	assert.Equal(t, "TS", col.Name)
	assert.Equal(t, "TIMESTAMP", col.Type.Name)
	assert.Equal(t, "6", col.Type.Length)
	assert.False(t, col.Nullable)
}

func TestParseColumn_MalformedClause(t *testing.T) {
	assert.Nil(t, parseColumn("justoneword"))
	assert.Nil(t, parseColumn(""))
}
