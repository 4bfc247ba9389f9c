package usecase

// Pipeline stage names, in execution order.
const (
	StageClassify = "classify"
	StageRoute    = "route"
	StageReply    = "reply"
	StagePersist  = "persist"
)

// Classification prompt. The category list must stay in sync with
// complaint.CategoryScanOrder.
const PromptClassify = `Classify this citizen complaint into one of the following categories:
[neighbor, noise, dogs, cars, city_services, robbery, assault, utilities (internet, electricity, water, phone)]
Complaint: %s
Reply with only the category name.`

// Reply prompt, addressed to the citizen in Arabic as a municipal
// customer-service clerk.
const PromptReply = `أنت موظف خدمة عملاء محترم في بلدية المدينة الذكية.
المواطن اسمه %s.
نوع الشكوى: %s.
نص الشكوى: "%s"

المطلوب منك: اكتب ردًا بشريًا لبقًا ومهذبًا يشعر المواطن بالاهتمام،
ويؤكد له أن البلدية استلمت شكواه، وتوضح الخطوة القادمة باختصار.
لا تستخدم لغة آلية، بل لغة طبيعية قريبة من الإنسان.
لا تتكلم كثيرا وقل المعلومه بشكل مناسب`

// FallbackReply is returned whenever the generative reply fails; the
// pipeline must always produce some reply text.
const FallbackReply = "شكرًا لتواصلك معنا، تم استلام الشكوى وسيتم متابعتها قريبًا."

// TemplateReply is the deterministic reply used in template mode,
// composed from category and action only.
const TemplateReply = "Complaint categorized as '%s'. It has been routed to the %s department. A representative will review it soon."

const defaultCacheSize = 256
