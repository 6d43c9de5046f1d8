package constant

const EmailQueueJoinedTemplate = `
Dear %s,

You have joined the queue for "%s".

Queue Details:
------------------------------------------
Your position: %d
Reading amount: %s
------------------------------------------

Your payment method has been reserved. You will only be charged when your
reading is completed. Keep this page open to follow your position in line.

Best regards,
SpiriVerse Team

Note: This is an automated message, please do not reply to this email.
`

const EmailReadingStartedTemplate = `
Dear %s,

It's your turn! Your reading for "%s" is starting now.

Please return to the live page to join your practitioner.

Best regards,
SpiriVerse Team
`

const EmailReadingSummaryTemplate = `
Dear %s,

Thank you for your reading in "%s". Your practitioner left you a summary:

------------------------------------------
%s
------------------------------------------
%s

Amount charged: %s

We hope to see you again soon.

Best regards,
SpiriVerse Team
`

const EmailQueueCanceledTemplate = `
Dear %s,

Your spot in the queue for "%s" has been released. The hold on your payment
method has been voided and you will not be charged.

Best regards,
SpiriVerse Team

Note: This is an automated message, please do not reply to this email.
`

const EmailSaleReceiptTemplate = `
Dear %s,

Thank you for your purchase!

Receipt:
------------------------------------------
Item: %s
Quantity: %d
Total: %s
------------------------------------------

Best regards,
SpiriVerse Team
`

const EmailPaymentLinkTemplate = `
Dear customer,

You have received a payment request.

------------------------------------------
%s
Total: %s
------------------------------------------

Pay securely here: %s

This link expires on %s.

Best regards,
SpiriVerse Team
`

const EmailPaymentLinkExpiredTemplate = `
Dear customer,

Your payment request for %s has expired and can no longer be paid. Please
contact your practitioner if you still wish to complete this purchase.

Best regards,
SpiriVerse Team
`
