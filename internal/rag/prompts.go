package rag

// Canned responses for empty retrievals - returned without a model call.
const (
	noInfoChatResponse = "I don't have any information about this topic in your uploaded documents. Please upload relevant study materials first."

	noInfoTeachingResponse = "I couldn't find specific information about this in your documents. However, I can explain the general concept if you like, or try asking about a different topic included in your study materials."

	noInfoSummaryResponse = "I couldn't find information for that specific context. Please check if the document was uploaded correctly."

	noDocumentsQuizWarning = "No documents found in your session. Please upload study materials first."

	quizParseFailure = "Failed to parse quiz. Please try again."

	perfectScoreRecommendation = "Excellent! You've mastered all the topics covered in this quiz."
)

const chatSystemPrompt = `You are a helpful study assistant. Answer the question based on the provided context.

Context from uploaded documents:
%s

Instructions:
1. Answer the question using ONLY the information from the context above.
2. If the context contains the answer (conceptually or explicitly), explain it clearly.
3. If the context mentions related concepts but not the exact answer, explain what IS mentioned.
4. If the context definitely does not contain the answer, state that you don't have that information.
5. Do not hallucinate or fix gaps with outside knowledge.`

const teachingSystemPrompt = `You are an expert Teacher AI. Your goal is not just to answer, but to TEACH.

Context from study materials:
%s

Target Language: %s

Instructions:
1. Explain the concept in a clear, engaging, and detailed manner in %s.
2. Use ANALOGIES and REAL-WORLD EXAMPLES to make the concept understandable.
3. If the answer involves steps, break them down clearly.
4. Use a friendly, encouraging tone (like a supportive tutor).
5. Stick to the facts in the context, but you CAN introduce standard pedagogical examples to illustrate those facts.
6. If the concept is complex, start simple and build up.

Structure your response to be spoken naturally.`

const summaryPrompt = `You are an expert study assistant.

Context from selected documents (%s):
%s

Request: %s

Instructions:
1. Focus ONLY on the provided context.
2. %s
3. If the context is limited, summarize what is available.`

const quizPrompt = `Create a quiz based ONLY on the provided context. Do NOT use any external knowledge.

Context from study materials:
%s

Instructions:
- Generate exactly %d multiple-choice questions
- Topic: %s
- Difficulty: %s - %s
- Questions MUST be based ONLY on information in the context - no external knowledge
- Return as JSON list with keys: 'question', 'options' (4 strings), 'answer' (correct option), 'topic' (brief topic)
- No markdown, just raw JSON`

const recommendationPrompt = `Based on these topics the student got wrong: %s

Provide a brief, encouraging study recommendation (2-3 sentences) focusing on these weak areas.`

const patternPrompt = `Analyze this exam paper and extract its structure.

PYQ Content:
%s

Return a JSON object with this EXACT structure:
{
    "sections": [
        {
            "name": "Section Name (e.g. Section A - MCQs)",
            "type": "mcq/short/long",
            "count": 5,
            "marks_per_question": 2,
            "description": "Brief description of question style"
        }
    ],
    "total_marks": 100,
    "difficulty": "Easy/Medium/Hard"
}
Do not output markdown.`

const paperSectionPrompt = `Create exam questions based on the provided study material, strictly following the section format.

Study Material Context:
%s

Section Requirements:
- Name: %s
- Type: %s
- Count: %d
- Marks: %d
- Style: %s

Instructions:
1. Generate exactly %d questions.
2. Questions must be based on the Study Material.
3. OUTPUT FORMAT: A valid JSON LIST of objects: [{ "question": "...", "answer": "Model answer..." }]
4. No markdown.`

const slidesPrompt = `Create content for a %d-slide presentation about "%s".

Context from study materials:
%s

Instructions:
1. Generate exactly %d slides (a title slide is implied, do not count it in the list)
2. For each slide provide:
   - "title": Short, catchy title
   - "points": List of 3-5 clear bullet points
   - "notes": Detailed speaker notes explaining the slide (approx 50-80 words)
3. Content must be based on the provided context
4. Output strictly as a JSON list of objects

Make it professional and educational.`

var difficultyInstructions = map[string]string{
	"easy":   "Create simple, straightforward questions testing basic recall and understanding.",
	"medium": "Create moderately challenging questions that test comprehension and application.",
	"hard":   "Create challenging questions that test analysis, synthesis, and critical thinking.",
}
