package ai

import (
	"fmt"

	"medharvest/internal/model"
)

func medicineBlock(m model.Medicine) string {
	return fmt.Sprintf(`Medicine Information:
- Product Name: %s
- Generic Name: %s
- Description: %s
- Details: %s`, m.ProductName, m.GenericName, m.Description, m.Details)
}

func tipPrompt(m model.Medicine) string {
	return fmt.Sprintf(`You are an expert in providing user-friendly and actionable insights based on detailed information. Your task is to extract one important user tip from the given medicine information and present it clearly and concisely.

%s

Your response must:
1. Be concise and under 30 words.
2. Focus on practical, actionable advice for users based on the provided information.
3. Avoid repeating the provided details verbatim unless essential for clarity.
4. Be formatted strictly as JSON, with no additional text outside of the JSON structure.

Output: Provide the user tip in the following JSON format:
{"status": 1, "message": "Successfully generated user tip", "data": {"user_tip": "Example user tip here"}}

If the information provided is insufficient to generate a tip, return:
{"status": 0, "message": "Insufficient information to generate a user tip", "data": null}`, medicineBlock(m))
}

func precautionPrompt(m model.Medicine) string {
	return fmt.Sprintf(`You are an expert in providing user-friendly and actionable insights based on detailed information. Your task is to extract one important precaution from the given medicine information and present it clearly and concisely.

%s

Your response must:
1. Be concise and under 30 words.
2. Focus on actionable and practical precautions based on the provided medicine information.
3. Avoid repeating the provided details verbatim unless essential for clarity.
4. Be formatted strictly as JSON, with no additional text outside of the JSON structure.

Output: Provide the precaution in the following JSON format:
{"status": 1, "message": "Successfully generated precaution", "data": {"precaution": "Example precaution here"}}

If the information provided is insufficient to generate a precaution, return:
{"status": 0, "message": "Insufficient information to generate a precaution", "data": null}`, medicineBlock(m))
}

func diseasesPrompt(m model.Medicine) string {
	return fmt.Sprintf(`You are an expert in extracting and formatting medical information. Your task is to identify and list diseases or conditions this medicine is used for, based on the provided information.

%s

Your response must:
1. Extract only the names of diseases or conditions this medicine is used for.
2. List the diseases or conditions in an array within the JSON format.
3. Avoid including additional details, explanations, or repeated text from the input.

Output: Provide the list in the following JSON format:
{"status": 1, "message": "Successfully extracted list of diseases/conditions", "data": {"diseases_conditions": ["Example Disease 1", "Example Disease 2"]}}

If the information provided is insufficient to identify any diseases or conditions, return:
{"status": 0, "message": "No diseases/conditions found", "data": null}`, medicineBlock(m))
}
