package assistant

import (
	"fmt"
	"strings"
)

// System prompts for the two prompt families.
const (
	testCaseSystemPrompt = "You are an expert TIBCO BusinessWorks developer specializing in comprehensive test case generation."

	analysisSystemPrompt = "You are an expert TIBCO BusinessWorks architect specializing in code analysis and complexity assessment."
)

const testCasePromptTemplate = `You are an expert TIBCO BusinessWorks developer and test engineer. Analyze the following TIBCO code/XML and generate comprehensive test cases.

TIBCO Code/XML:
%s

Test Requirements:
- Test Types: %s
- Complexity Level: %s

Please provide:
1. **Test Case Overview** - Brief summary of the process being tested
2. **Input Data Sets** - Specific input values for each test scenario
3. **Expected Results** - What the expected output should be for each input
4. **Test Steps** - Detailed steps to execute each test
5. **Edge Cases** - Boundary conditions and edge scenarios
6. **Error Scenarios** - Invalid inputs and error handling tests
7. **Validation Points** - Key checkpoints to verify during testing

Format the response in clear sections with bullet points and code examples where applicable.
Focus on TIBCO BusinessWorks specific testing patterns and best practices.`

const testCaseChunkPromptTemplate = `You are an expert TIBCO BusinessWorks developer and test engineer. This is part %d of %d of a larger TIBCO process definition.

TIBCO Code/XML (part %d/%d):
%s

Test Requirements:
- Test Types: %s
- Complexity Level: %s

Please provide test cases for the components in this chunk:
1. **Chunk Analysis** - What components/logic are present in this chunk
2. **Test Scenarios** - Specific test cases for this chunk's functionality
3. **Input Data** - Required inputs for testing this chunk
4. **Expected Results** - Expected outputs from this chunk
5. **Integration Points** - How this chunk connects to other parts

Format concisely but thoroughly. Focus on TIBCO BusinessWorks patterns.`

const analysisPromptTemplate = `You are an expert TIBCO BusinessWorks architect and code reviewer. Analyze the following TIBCO code/XML for complexity, patterns, and potential issues.

TIBCO Code/XML:
%s

Analysis Requirements:
- Analysis Areas: %s
- Detail Level: %s

Please provide a comprehensive analysis covering:

1. **Complexity Metrics**
   - Cyclomatic complexity score
   - Nesting levels and depth
   - Number of decision points

2. **Architecture Analysis**
   - Process flow complexity
   - Component interactions
   - Data transformation complexity

3. **Dependency Analysis**
   - External dependencies
   - Coupling between components
   - Resource dependencies

4. **Anti-pattern Detection**
   - Common TIBCO anti-patterns
   - Code smells specific to BusinessWorks
   - Maintainability issues

5. **Performance Implications**
   - Potential bottlenecks
   - Memory usage concerns
   - Processing efficiency

6. **Recommendations**
   - Refactoring suggestions
   - Best practice improvements
   - Optimization opportunities

7. **Risk Assessment**
   - Maintainability score (1-10)
   - Complexity rating (Low/Medium/High)
   - Priority areas for improvement

Format the response with clear sections, metrics, and actionable recommendations.
Use TIBCO BusinessWorks terminology and best practices throughout.`

const analysisChunkPromptTemplate = `You are an expert TIBCO BusinessWorks architect and code reviewer. This is part %d of %d of a larger TIBCO process definition.

TIBCO Code/XML (part %d/%d):
%s

Analysis Requirements:
- Analysis Areas: %s
- Detail Level: %s

Please analyze this chunk covering:
1. **Chunk Complexity** - Complexity metrics for this specific chunk
2. **Local Dependencies** - Dependencies within this chunk
3. **Component Analysis** - TIBCO components and their complexity
4. **Chunk-specific Issues** - Problems identified in this chunk
5. **Integration Impact** - How this chunk affects overall process complexity

Be concise but thorough. Focus on actionable insights.`

func testCasePrompt(code string, testTypes []string, complexityLevel string) string {
	return fmt.Sprintf(testCasePromptTemplate, code, strings.Join(testTypes, ", "), complexityLevel)
}

func testCaseChunkPrompt(part, total int, code string, testTypes []string, complexityLevel string) string {
	return fmt.Sprintf(testCaseChunkPromptTemplate, part, total, part, total, code, strings.Join(testTypes, ", "), complexityLevel)
}

func analysisPrompt(code string, analysisAreas []string, detailLevel string) string {
	return fmt.Sprintf(analysisPromptTemplate, code, strings.Join(analysisAreas, ", "), detailLevel)
}

func analysisChunkPrompt(part, total int, code string, analysisAreas []string, detailLevel string) string {
	return fmt.Sprintf(analysisChunkPromptTemplate, part, total, part, total, code, strings.Join(analysisAreas, ", "), detailLevel)
}
